package dto

import (
	"time"

	"ai-interview-be/pkg/resume"
	"ai-interview-be/pkg/transcript"

	"github.com/google/uuid"
)

type CreateInterviewRequest struct {
	SessionType      string             `json:"session_type" validate:"required,oneof=topic custom"`
	TopicId          *uuid.UUID         `json:"topic_id"`
	Difficulty       string             `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	ResumeText       string             `json:"resume_text"`
	ResumeStructured *resume.Structured `json:"resume_structured"`
	JobDescription   string             `json:"job_description"`
	JobTitle         string             `json:"job_title" validate:"max=200"`
}

// UpdateInterviewRequest is a partial update; nil fields are left untouched.
type UpdateInterviewRequest struct {
	Id               uuid.UUID
	Status           *string                 `json:"status" validate:"omitempty,oneof=created active completed"`
	Transcript       *[]transcript.Entry     `json:"transcript"`
	DurationSeconds  *float64                `json:"duration_seconds"`
	OverallScore     *float64                `json:"overall_score"`
	Feedback         *map[string]interface{} `json:"feedback"`
	ResumeStructured *resume.Structured      `json:"resume_structured"`
}

type InterviewResponse struct {
	Id               uuid.UUID              `json:"id"`
	SessionType      string                 `json:"session_type"`
	TopicId          *uuid.UUID             `json:"topic_id"`
	TopicName        *string                `json:"topic_name"`
	Difficulty       string                 `json:"difficulty"`
	JobTitle         string                 `json:"job_title"`
	Status           string                 `json:"status"`
	CreatedAt        time.Time              `json:"created_at"`
	StartedAt        *time.Time             `json:"started_at"`
	EndedAt          *time.Time             `json:"ended_at"`
	DurationSeconds  float64                `json:"duration_seconds"`
	OverallScore     *float64               `json:"overall_score"`
	Transcript       []transcript.Entry     `json:"transcript"`
	Feedback         map[string]interface{} `json:"feedback"`
	ResumeStructured *resume.Structured     `json:"resume_structured,omitempty"`
}

type InterviewListItem struct {
	Id              uuid.UUID  `json:"id"`
	SessionType     string     `json:"session_type"`
	TopicId         *uuid.UUID `json:"topic_id"`
	TopicName       *string    `json:"topic_name"`
	Difficulty      string     `json:"difficulty"`
	JobTitle        string     `json:"job_title"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DurationSeconds float64    `json:"duration_seconds"`
	OverallScore    *float64   `json:"overall_score"`
}

type EmotionSnapshotResponse struct {
	Timestamp       float64            `json:"timestamp"`
	Source          string             `json:"source"`
	Emotions        map[string]float64 `json:"emotions"`
	DominantEmotion string             `json:"dominant_emotion"`
	StressScore     float64            `json:"stress_score"`
	ConfidenceScore float64            `json:"confidence_score"`
}

type ListInterviewsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=created active completed"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
}
