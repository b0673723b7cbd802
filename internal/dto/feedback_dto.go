package dto

import "github.com/google/uuid"

// GenerateFeedbackMessage is the payload of an auto-feedback job.
type GenerateFeedbackMessage struct {
	SessionId uuid.UUID `json:"session_id"`
}
