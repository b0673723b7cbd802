package entity

import (
	"time"

	"github.com/google/uuid"
)

const EmotionSourceFace = "face"

type EmotionSnapshot struct {
	Id              uuid.UUID
	SessionId       uuid.UUID
	Timestamp       float64
	Source          string
	Emotions        map[string]float64
	DominantEmotion string
	StressScore     float64
	ConfidenceScore float64
	CreatedAt       time.Time
}
