package service

import (
	"context"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/repository/specification"
	"ai-interview-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ISessionStore is the persistence the live relay needs.
type ISessionStore interface {
	Load(ctx context.Context, id uuid.UUID) (*entity.InterviewSession, error)
	LoadTopic(ctx context.Context, id uuid.UUID) (*entity.InterviewTopic, error)
	Save(ctx context.Context, session *entity.InterviewSession) error
	RecordEmotion(ctx context.Context, snapshot *entity.EmotionSnapshot) error
}

type sessionStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionStore(uowFactory unitofwork.RepositoryFactory) ISessionStore {
	return &sessionStore{uowFactory: uowFactory}
}

func (s *sessionStore) Load(ctx context.Context, id uuid.UUID) (*entity.InterviewSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InterviewSessionRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (s *sessionStore) LoadTopic(ctx context.Context, id uuid.UUID) (*entity.InterviewTopic, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InterviewTopicRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (s *sessionStore) Save(ctx context.Context, session *entity.InterviewSession) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InterviewSessionRepository().Update(ctx, session)
}

// RecordEmotion always runs on a fresh unit of work so a failed snapshot
// never shares a transaction with the session record.
func (s *sessionStore) RecordEmotion(ctx context.Context, snapshot *entity.EmotionSnapshot) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EmotionSnapshotRepository().Create(ctx, snapshot)
}
