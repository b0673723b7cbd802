package emotion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-interview-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScores(t *testing.T) {
	tests := []struct {
		name       string
		emotions   map[string]float64
		stress     float64
		confidence float64
	}{
		{"all neutral", map[string]float64{"neutral": 1}, 0, 1},
		{"all fear", map[string]float64{"fear": 1}, 1, 0},
		{"mixed", map[string]float64{"happy": 0.5, "sad": 0.5}, 0.3, 0.15},
		{"clamped", map[string]float64{"fear": 0.8, "angry": 0.8}, 1, 0},
		{"empty", map[string]float64{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.stress, StressScore(tt.emotions), 1e-9)
			assert.InDelta(t, tt.confidence, ConfidenceScore(tt.emotions), 1e-9)
		})
	}
}

func TestFromPercentagesNormalizes(t *testing.T) {
	r := FromPercentages(map[string]float64{"happy": 80, "neutral": 20}, "")

	assert.Equal(t, 0.8, r.Emotions["happy"])
	assert.Equal(t, 0.2, r.Emotions["neutral"])
	assert.Equal(t, "happy", r.DominantEmotion)
	assert.InDelta(t, 0.84, r.ConfidenceScore, 1e-9)
}

func TestStripDataURL(t *testing.T) {
	assert.Equal(t, "QUJD", StripDataURL("data:image/jpeg;base64,QUJD"))
	assert.Equal(t, "QUJD", StripDataURL("QUJD"))
}

func TestAnalyzerUsesClassifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "QUJD", req.Image)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"emotion":          map[string]float64{"fear": 50, "neutral": 50},
			"dominant_emotion": "fear",
		})
	}))
	defer srv.Close()

	a := NewAnalyzer(NewHTTPClassifier(srv.URL, time.Second), logger.NewNopLogger())
	r := a.AnalyzeFrame(context.Background(), "data:image/jpeg;base64,QUJD")

	assert.Equal(t, "fear", r.DominantEmotion)
	assert.Equal(t, 0.5, r.StressScore)
	assert.Equal(t, 0.1, r.ConfidenceScore)
}

func TestAnalyzerFallsBackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewAnalyzer(NewHTTPClassifier(srv.URL, time.Second), logger.NewNopLogger())

	assert.Equal(t, Fallback(), a.AnalyzeFrame(context.Background(), "QUJD"))
	assert.Equal(t, Fallback(), a.AnalyzeFrame(context.Background(), "not base64!!"))
	assert.Equal(t, Fallback(), NewAnalyzer(nil, logger.NewNopLogger()).AnalyzeFrame(context.Background(), "QUJD"))
}
