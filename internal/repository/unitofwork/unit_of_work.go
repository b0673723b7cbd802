package unitofwork

import (
	"context"

	"ai-interview-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InterviewSessionRepository() contract.InterviewSessionRepository
	InterviewTopicRepository() contract.InterviewTopicRepository
	EmotionSnapshotRepository() contract.EmotionSnapshotRepository
}
