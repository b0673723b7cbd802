package emotion

import "math"

// Result is the analysis of one webcam frame. Probabilities are in [0,1].
type Result struct {
	Emotions        map[string]float64 `json:"emotions"`
	DominantEmotion string             `json:"dominant_emotion"`
	StressScore     float64            `json:"stress_score"`
	ConfidenceScore float64            `json:"confidence_score"`
}

var stressWeights = map[string]float64{
	"fear":     1.0,
	"angry":    0.8,
	"sad":      0.6,
	"disgust":  0.5,
	"surprise": 0.3,
}

var confidenceWeights = map[string]float64{
	"happy":    0.8,
	"neutral":  1.0,
	"surprise": 0.3,
	"fear":     -0.8,
	"sad":      -0.5,
	"angry":    -0.3,
}

func StressScore(emotions map[string]float64) float64 {
	return clamp01(weighted(emotions, stressWeights))
}

func ConfidenceScore(emotions map[string]float64) float64 {
	return clamp01(weighted(emotions, confidenceWeights))
}

// Fallback is the neutral result used whenever classification fails.
func Fallback() *Result {
	return &Result{
		Emotions: map[string]float64{
			"happy":    0,
			"sad":      0,
			"angry":    0,
			"surprise": 0,
			"fear":     0,
			"disgust":  0,
			"neutral":  1,
		},
		DominantEmotion: "neutral",
		StressScore:     0,
		ConfidenceScore: 0.5,
	}
}

// FromPercentages builds a Result from classifier output expressed in percent.
func FromPercentages(percent map[string]float64, dominant string) *Result {
	emotions := make(map[string]float64, len(percent))
	for k, v := range percent {
		emotions[k] = round4(v / 100)
	}
	if dominant == "" {
		dominant = dominantOf(emotions)
	}
	return &Result{
		Emotions:        emotions,
		DominantEmotion: dominant,
		StressScore:     round4(StressScore(emotions)),
		ConfidenceScore: round4(ConfidenceScore(emotions)),
	}
}

func weighted(emotions map[string]float64, weights map[string]float64) float64 {
	var sum float64
	for name, w := range weights {
		sum += emotions[name] * w
	}
	return sum
}

func dominantOf(emotions map[string]float64) string {
	best, bestScore := "neutral", -1.0
	for k, v := range emotions {
		if v > bestScore || (v == bestScore && k < best) {
			best, bestScore = k, v
		}
	}
	return best
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
