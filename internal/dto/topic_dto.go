package dto

import "github.com/google/uuid"

type TopicResponse struct {
	Id               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Icon             string    `json:"icon"`
	Description      string    `json:"description"`
	Subtopics        []string  `json:"subtopics"`
	DifficultyLevels []string  `json:"difficulty_levels"`
}
