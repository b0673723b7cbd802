package contract

import (
	"context"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/repository/specification"
)

type InterviewTopicRepository interface {
	Create(ctx context.Context, topic *entity.InterviewTopic) error
	CreateBulk(ctx context.Context, topics []*entity.InterviewTopic) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewTopic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewTopic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
