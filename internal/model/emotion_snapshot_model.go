package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EmotionSnapshot struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Timestamp       float64        `gorm:"not null"`
	Source          string         `gorm:"type:varchar(10);default:face"`
	Emotions        datatypes.JSON `gorm:"type:jsonb"`
	DominantEmotion string         `gorm:"type:varchar(20);default:neutral"`
	StressScore     float64        `gorm:"default:0"`
	ConfidenceScore float64        `gorm:"default:0"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`

	Session *InterviewSession `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (EmotionSnapshot) TableName() string {
	return "emotion_snapshots"
}
