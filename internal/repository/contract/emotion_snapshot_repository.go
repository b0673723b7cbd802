package contract

import (
	"context"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/repository/specification"
)

type EmotionSnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.EmotionSnapshot) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmotionSnapshot, error)
}
