package entity

import (
	"time"

	"ai-interview-be/pkg/resume"
	"ai-interview-be/pkg/transcript"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewStatusCreated   InterviewStatus = "created"
	InterviewStatusActive    InterviewStatus = "active"
	InterviewStatusCompleted InterviewStatus = "completed"
)

type SessionType string

const (
	SessionTypeTopic  SessionType = "topic"
	SessionTypeCustom SessionType = "custom"
)

type InterviewSession struct {
	Id               uuid.UUID
	SessionType      SessionType
	TopicId          *uuid.UUID
	Difficulty       string
	ResumeText       string
	ResumeStructured *resume.Structured
	JobDescription   string
	JobTitle         string
	Status           InterviewStatus
	CreatedAt        time.Time
	StartedAt        *time.Time
	EndedAt          *time.Time
	DurationSeconds  float64
	Transcript       []transcript.Entry
	OverallScore     *float64
	Feedback         map[string]interface{}

	// Populated by list queries only
	TopicName *string
}

// ResetForRerun clears the results of a completed run so the session can be
// conducted again.
func (s *InterviewSession) ResetForRerun() {
	s.Status = InterviewStatusCreated
	s.Transcript = []transcript.Entry{}
	s.DurationSeconds = 0
	s.StartedAt = nil
	s.EndedAt = nil
	s.OverallScore = nil
	s.Feedback = map[string]interface{}{}
}
