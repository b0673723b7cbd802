package entity

import (
	"time"

	"github.com/google/uuid"
)

type InterviewTopic struct {
	Id               uuid.UUID
	Name             string
	Category         string
	Icon             string
	Description      string
	Subtopics        []string
	DifficultyLevels []string
	CreatedAt        time.Time
}
