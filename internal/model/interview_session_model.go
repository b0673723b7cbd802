package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InterviewSession struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionType      string         `gorm:"type:varchar(20);not null"`
	TopicId          *uuid.UUID     `gorm:"type:uuid;index"`
	Difficulty       string         `gorm:"type:varchar(20);default:intermediate"`
	ResumeText       string         `gorm:"type:text"`
	ResumeStructured datatypes.JSON `gorm:"type:jsonb"`
	JobDescription   string         `gorm:"type:text"`
	JobTitle         string         `gorm:"type:varchar(200)"`
	Status           string         `gorm:"type:varchar(20);not null;default:created;index"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	StartedAt        *time.Time
	EndedAt          *time.Time
	DurationSeconds  float64        `gorm:"default:0"`
	Transcript       datatypes.JSON `gorm:"type:jsonb"`
	OverallScore     *float64
	Feedback         datatypes.JSON `gorm:"type:jsonb"`

	Topic *InterviewTopic `gorm:"foreignKey:TopicId"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
