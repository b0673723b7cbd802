package coderunner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Judge0 CE language ids.
var languageIDs = map[string]int{
	"python":     71,
	"javascript": 63,
	"java":       62,
	"cpp":        54,
	"c":          50,
	"typescript": 74,
}

type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("Unsupported language '%s'. Supported: %s", e.Language, strings.Join(SupportedLanguages(), ", "))
}

func SupportedLanguages() []string {
	out := make([]string, 0, len(languageIDs))
	for k := range languageIDs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type Submission struct {
	SourceCode string
	Language   string
	Stdin      string
}

type Result struct {
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	CompileOutput string  `json:"compile_output"`
	Status        string  `json:"status"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
}

type Runner interface {
	Run(ctx context.Context, sub Submission) (*Result, error)
}

type submissionRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type submissionResponse struct {
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
	Status        *struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

// Judge0Client submits code synchronously (wait=true).
type Judge0Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewJudge0Client(baseURL, apiKey string) *Judge0Client {
	return &Judge0Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Judge0Client) Run(ctx context.Context, sub Submission) (*Result, error) {
	langID, ok := languageIDs[strings.ToLower(sub.Language)]
	if !ok {
		return nil, &UnsupportedLanguageError{Language: sub.Language}
	}

	b, err := json.Marshal(submissionRequest{SourceCode: sub.SourceCode, LanguageID: langID, Stdin: sub.Stdin})
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("base64_encoded", "false")
	q.Set("wait", "true")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submissions?"+q.Encode(), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
		if u, err := url.Parse(c.baseURL); err == nil {
			req.Header.Set("X-RapidAPI-Host", u.Host)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("judge0 request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("judge0 %s: %s", resp.Status, string(body))
	}

	var out submissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("judge0 decode: %w", err)
	}

	status := "Completed"
	if out.Status != nil && out.Status.Description != "" {
		status = out.Status.Description
	}

	return &Result{
		Stdout:        deref(out.Stdout),
		Stderr:        deref(out.Stderr),
		CompileOutput: deref(out.CompileOutput),
		Status:        status,
		Time:          out.Time,
		Memory:        out.Memory,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
