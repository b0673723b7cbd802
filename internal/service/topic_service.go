package service

import (
	"context"
	"time"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/internal/repository/specification"
	"ai-interview-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITopicService interface {
	GetAll(ctx context.Context) ([]*dto.TopicResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TopicResponse, error)
	// Seed inserts the default catalogue when no topics exist yet.
	Seed(ctx context.Context) (int, error)
}

type topicService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTopicService(uowFactory unitofwork.RepositoryFactory) ITopicService {
	return &topicService{uowFactory: uowFactory}
}

func (s *topicService) GetAll(ctx context.Context) ([]*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topics, err := uow.InterviewTopicRepository().FindAll(ctx,
		specification.OrderBy{Field: "category"},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		result = append(result, toTopicResponse(topic))
	}
	return result, nil
}

func (s *topicService) Show(ctx context.Context, id uuid.UUID) (*dto.TopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.InterviewTopicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrTopicNotFound)
	}
	return toTopicResponse(topic), nil
}

func (s *topicService) Seed(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.InterviewTopicRepository().Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now()
	topics := make([]*entity.InterviewTopic, 0, len(defaultTopics))
	for _, t := range defaultTopics {
		topic := t
		topic.Id = uuid.New()
		topic.DifficultyLevels = defaultDifficultyLevels
		topic.CreatedAt = now
		topics = append(topics, &topic)
	}

	if err := uow.InterviewTopicRepository().CreateBulk(ctx, topics); err != nil {
		return 0, err
	}
	return len(topics), nil
}

func toTopicResponse(t *entity.InterviewTopic) *dto.TopicResponse {
	return &dto.TopicResponse{
		Id:               t.Id,
		Name:             t.Name,
		Category:         t.Category,
		Icon:             t.Icon,
		Description:      t.Description,
		Subtopics:        t.Subtopics,
		DifficultyLevels: t.DifficultyLevels,
	}
}
