package specification

import (
	"ai-interview-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status entity.InterviewStatus
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// WithTopic eager loads the topic so list views can show its name.
type WithTopic struct{}

func (s WithTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Topic")
}
