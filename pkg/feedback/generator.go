package feedback

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/transcript"
)

const maxTranscriptChars = 8000

const coachSystem = `You are an interview coach analyzing a mock interview performance.
Return ONLY valid JSON with no markdown formatting, no code blocks, just raw JSON.`

// EmotionSample is one stored webcam reading.
type EmotionSample struct {
	Timestamp       float64
	DominantEmotion string
	StressScore     float64
	ConfidenceScore float64
}

type Input struct {
	Context    string
	Transcript []transcript.Entry
	Emotions   []EmotionSample
}

type Generator struct {
	provider llm.LLMProvider
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{provider: provider}
}

// Generate fails only when the model call fails.
func (g *Generator) Generate(ctx context.Context, in Input) (*Report, error) {
	out, err := g.provider.Generate(ctx, BuildPrompt(in),
		llm.WithSystemInstruction(coachSystem),
		llm.WithJSON(),
	)
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}
	return Decode(out), nil
}

func BuildPrompt(in Input) string {
	var p strings.Builder

	p.WriteString("Analyze this mock interview and return a detailed JSON feedback report.\n\n")
	fmt.Fprintf(&p, "Interview Context: %s\n\n", in.Context)
	p.WriteString("Transcript:\n---\n")
	p.WriteString(FormatTranscript(in.Transcript))
	p.WriteString("\n---\n\n")
	p.WriteString(SummarizeEmotions(in.Emotions))
	p.WriteString(`
Return a JSON object with:
- "overall_score": number 0-100
- "summary": 2-3 sentence overall assessment (string)
- "strengths": array of objects with "area" and "detail" fields
- "weaknesses": array of objects with "area" and "detail" fields
- "suggestions": array of specific improvement tips (strings)
- "emotion_summary": object with "avg_stress", "avg_confidence", "dominant_mood", "body_language_notes"
- "question_breakdown": array of objects with "question", "response_quality" (good/fair/poor), "notes"

Return ONLY the JSON object.`)

	return p.String()
}

// FormatTranscript renders "ROLE: content" lines, cut to maxTranscriptChars.
func FormatTranscript(entries []transcript.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(string(e.Role)), e.Content)
	}
	s := b.String()
	if len(s) <= maxTranscriptChars {
		return s
	}
	s = s[:maxTranscriptChars]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

// SummarizeEmotions returns an empty string when there are no samples.
func SummarizeEmotions(samples []EmotionSample) string {
	if len(samples) == 0 {
		return ""
	}

	var stress, confidence float64
	counts := map[string]int{}
	for _, s := range samples {
		stress += s.StressScore
		confidence += s.ConfidenceScore
		mood := s.DominantEmotion
		if mood == "" {
			mood = "neutral"
		}
		counts[mood]++
	}
	n := float64(len(samples))

	type moodCount struct {
		mood  string
		count int
	}
	moods := make([]moodCount, 0, len(counts))
	for m, c := range counts {
		moods = append(moods, moodCount{m, c})
	}
	sort.Slice(moods, func(i, j int) bool {
		if moods[i].count != moods[j].count {
			return moods[i].count > moods[j].count
		}
		return moods[i].mood < moods[j].mood
	})
	if len(moods) > 3 {
		moods = moods[:3]
	}
	top := make([]string, len(moods))
	for i, m := range moods {
		top[i] = fmt.Sprintf("%s(%d)", m.mood, m.count)
	}

	trend := "stable/decreasing"
	if len(samples) > 1 && samples[len(samples)-1].StressScore > samples[0].StressScore {
		trend = "increasing"
	}

	return fmt.Sprintf(`Emotion Analysis:
- Average stress level: %.2f/1.0
- Average confidence level: %.2f/1.0
- Most frequent emotions: %s
- Stress trend: %s
`, stress/n, confidence/n, strings.Join(top, ", "), trend)
}
