package feedback

import (
	"context"
	"strings"
	"testing"

	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/transcript"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	out    string
	prompt string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.prompt = history[len(history)-1].Content
	return s.out, nil
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestSummarizeEmotions(t *testing.T) {
	assert.Empty(t, SummarizeEmotions(nil))

	out := SummarizeEmotions([]EmotionSample{
		{DominantEmotion: "neutral", StressScore: 0.2, ConfidenceScore: 0.8},
		{DominantEmotion: "fear", StressScore: 0.4, ConfidenceScore: 0.6},
		{DominantEmotion: "neutral", StressScore: 0.6, ConfidenceScore: 0.4},
	})

	assert.Contains(t, out, "Average stress level: 0.40/1.0")
	assert.Contains(t, out, "Average confidence level: 0.60/1.0")
	assert.Contains(t, out, "neutral(2), fear(1)")
	assert.Contains(t, out, "Stress trend: increasing")
}

func TestFormatTranscriptTruncates(t *testing.T) {
	entries := []transcript.Entry{
		{Role: transcript.RoleInterviewer, Content: "Hi"},
		{Role: transcript.RoleCandidate, Content: strings.Repeat("é", 6000)},
	}

	out := FormatTranscript(entries)

	assert.True(t, strings.HasPrefix(out, "INTERVIEWER: Hi\nCANDIDATE: "))
	assert.LessOrEqual(t, len(out), maxTranscriptChars)
}

func TestGenerateDecodesReport(t *testing.T) {
	p := &stubProvider{out: "```json\n{\"overall_score\":140,\"summary\":\"Solid\",\"suggestions\":[\"Slow down\"]}\n```"}

	r, err := NewGenerator(p).Generate(context.Background(), Input{
		Context:    "Topic: Go",
		Transcript: []transcript.Entry{{Role: transcript.RoleCandidate, Content: "channels"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, r.OverallScore)
	assert.Equal(t, "Solid", r.Summary)
	assert.NotNil(t, r.Strengths)
	assert.Contains(t, p.prompt, "Interview Context: Topic: Go")
	assert.Contains(t, p.prompt, "CANDIDATE: channels")
}

func TestDecodeFallback(t *testing.T) {
	r := Decode("not json")

	assert.Equal(t, 0.0, r.OverallScore)
	assert.Equal(t, fallbackSummary, r.Summary)
	assert.Equal(t, "not json", r.Map()["raw_output"])
}
