package emotion

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-interview-be/internal/pkg/logger"
)

var ErrNoFace = errors.New("classifier returned no emotions")

// Classifier turns a raw base64 encoded image into emotion percentages.
type Classifier interface {
	Classify(ctx context.Context, imageBase64 string) (*Result, error)
}

type analyzeRequest struct {
	Image string `json:"image"`
}

type analyzeResponse struct {
	Emotions        map[string]float64 `json:"emotion"`
	DominantEmotion string             `json:"dominant_emotion"`
}

// HTTPClassifier calls a facial-expression service exposing POST /analyze.
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClassifier(baseURL string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, imageBase64 string) (*Result, error) {
	b, err := json.Marshal(analyzeRequest{Image: imageBase64})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("emotion %s: %s", resp.Status, string(body))
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("emotion decode: %w", err)
	}
	if len(out.Emotions) == 0 {
		return nil, ErrNoFace
	}
	return FromPercentages(out.Emotions, out.DominantEmotion), nil
}

// Analyzer never fails: any classifier error degrades to Fallback.
type Analyzer struct {
	classifier Classifier
	logger     logger.ILogger
}

// NewAnalyzer accepts a nil classifier, in which case every frame is neutral.
func NewAnalyzer(classifier Classifier, log logger.ILogger) *Analyzer {
	return &Analyzer{classifier: classifier, logger: log}
}

// AnalyzeFrame accepts a bare base64 image or a data URL.
func (a *Analyzer) AnalyzeFrame(ctx context.Context, frame string) *Result {
	if a.classifier == nil {
		return Fallback()
	}

	data := StripDataURL(frame)
	if _, err := base64.StdEncoding.DecodeString(data); err != nil {
		a.logger.Warn("EmotionAnalyzer", "Frame is not valid base64", map[string]interface{}{"error": err.Error()})
		return Fallback()
	}

	res, err := a.classifier.Classify(ctx, data)
	if err != nil {
		a.logger.Warn("EmotionAnalyzer", "Classification failed, using neutral fallback", map[string]interface{}{"error": err.Error()})
		return Fallback()
	}
	return res
}

// StripDataURL removes a "data:image/...;base64," prefix if present.
func StripDataURL(frame string) string {
	if i := strings.Index(frame, ","); i >= 0 {
		return frame[i+1:]
	}
	return frame
}
