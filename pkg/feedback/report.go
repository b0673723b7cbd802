package feedback

import (
	"encoding/json"

	"ai-interview-be/pkg/llm"
)

type Point struct {
	Area   string `json:"area"`
	Detail string `json:"detail"`
}

type QuestionNote struct {
	Question        string `json:"question"`
	ResponseQuality string `json:"response_quality"`
	Notes           string `json:"notes"`
}

// Report is the coaching report generated after an interview.
type Report struct {
	OverallScore      float64                `json:"overall_score"`
	Summary           string                 `json:"summary"`
	Strengths         []Point                `json:"strengths"`
	Weaknesses        []Point                `json:"weaknesses"`
	Suggestions       []string               `json:"suggestions"`
	EmotionSummary    map[string]interface{} `json:"emotion_summary"`
	QuestionBreakdown []QuestionNote         `json:"question_breakdown"`
	RawOutput         string                 `json:"raw_output,omitempty"`
}

const fallbackSummary = "Unable to generate feedback. Please try again."

func Fallback(raw string) *Report {
	return &Report{
		Summary:           fallbackSummary,
		Strengths:         []Point{},
		Weaknesses:        []Point{},
		Suggestions:       []string{},
		EmotionSummary:    map[string]interface{}{},
		QuestionBreakdown: []QuestionNote{},
		RawOutput:         raw,
	}
}

// Decode reads a model answer, tolerating code fences. Undecodable output
// yields Fallback carrying the raw text.
func Decode(out string) *Report {
	cleaned := llm.StripCodeFence(out)

	var r Report
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return Fallback(cleaned)
	}

	switch {
	case r.OverallScore < 0:
		r.OverallScore = 0
	case r.OverallScore > 100:
		r.OverallScore = 100
	}
	if r.Strengths == nil {
		r.Strengths = []Point{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []Point{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []string{}
	}
	if r.EmotionSummary == nil {
		r.EmotionSummary = map[string]interface{}{}
	}
	if r.QuestionBreakdown == nil {
		r.QuestionBreakdown = []QuestionNote{}
	}
	return &r
}

// Map flattens the report for JSON column storage.
func (r *Report) Map() map[string]interface{} {
	b, _ := json.Marshal(r)
	out := map[string]interface{}{}
	_ = json.Unmarshal(b, &out)
	return out
}
