package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InterviewTopic struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	Category         string         `gorm:"type:varchar(50);not null"`
	Icon             string         `gorm:"type:varchar(10)"`
	Description      string         `gorm:"type:text"`
	Subtopics        datatypes.JSON `gorm:"type:jsonb"`
	DifficultyLevels datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
}

func (InterviewTopic) TableName() string {
	return "interview_topics"
}
