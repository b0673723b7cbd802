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
	"ai-interview-be/pkg/prompt"
	"ai-interview-be/pkg/transcript"

	"github.com/google/uuid"
)

type IInterviewService interface {
	Create(ctx context.Context, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error)
	GetAll(ctx context.Context, query *dto.ListInterviewsQuery) ([]*dto.InterviewListItem, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.InterviewResponse, error)
	Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error)
	GetEmotions(ctx context.Context, id uuid.UUID) ([]*dto.EmotionSnapshotResponse, error)
}

type interviewService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInterviewService(uowFactory unitofwork.RepositoryFactory) IInterviewService {
	return &interviewService{uowFactory: uowFactory}
}

func (s *interviewService) Create(ctx context.Context, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessionType := entity.SessionType(req.SessionType)
	var topicId *uuid.UUID
	if sessionType == entity.SessionTypeTopic && req.TopicId != nil {
		topic, err := uow.InterviewTopicRepository().FindOne(ctx, specification.ByID{ID: *req.TopicId})
		if err != nil {
			return nil, err
		}
		if topic == nil {
			return nil, serverutils.NewNotFoundError(constant.ErrTopicNotFound)
		}
		topicId = req.TopicId
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = prompt.DefaultDifficulty
	}

	session := &entity.InterviewSession{
		Id:               uuid.New(),
		SessionType:      sessionType,
		TopicId:          topicId,
		Difficulty:       difficulty,
		ResumeText:       req.ResumeText,
		ResumeStructured: req.ResumeStructured,
		JobDescription:   req.JobDescription,
		JobTitle:         req.JobTitle,
		Status:           entity.InterviewStatusCreated,
		CreatedAt:        time.Now(),
		Transcript:       []transcript.Entry{},
		Feedback:         map[string]interface{}{},
	}

	if err := uow.InterviewSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return toInterviewResponse(session), nil
}

func (s *interviewService) GetAll(ctx context.Context, query *dto.ListInterviewsQuery) ([]*dto.InterviewListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.WithTopic{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if query != nil {
		if query.Status != "" {
			specs = append(specs, specification.ByStatus{Status: entity.InterviewStatus(query.Status)})
		}
		if query.Limit > 0 {
			page := query.Page
			if page < 1 {
				page = 1
			}
			specs = append(specs, specification.Pagination{Limit: query.Limit, Offset: (page - 1) * query.Limit})
		}
	}

	sessions, err := uow.InterviewSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.InterviewListItem, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, &dto.InterviewListItem{
			Id:              session.Id,
			SessionType:     string(session.SessionType),
			TopicId:         session.TopicId,
			TopicName:       session.TopicName,
			Difficulty:      session.Difficulty,
			JobTitle:        session.JobTitle,
			Status:          string(session.Status),
			CreatedAt:       session.CreatedAt,
			DurationSeconds: session.DurationSeconds,
			OverallScore:    session.OverallScore,
		})
	}
	return result, nil
}

func (s *interviewService) Show(ctx context.Context, id uuid.UUID) (*dto.InterviewResponse, error) {
	session, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toInterviewResponse(session), nil
}

func (s *interviewService) Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		session.Status = entity.InterviewStatus(*req.Status)
		if session.Status == entity.InterviewStatusCompleted {
			now := time.Now()
			session.EndedAt = &now
		}
	}
	if req.Transcript != nil {
		session.Transcript = *req.Transcript
	}
	if req.DurationSeconds != nil {
		session.DurationSeconds = *req.DurationSeconds
	}
	if req.OverallScore != nil {
		session.OverallScore = req.OverallScore
	}
	if req.Feedback != nil {
		session.Feedback = *req.Feedback
	}
	if req.ResumeStructured != nil {
		session.ResumeStructured = req.ResumeStructured
	}

	if err := uow.InterviewSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	return toInterviewResponse(session), nil
}

func (s *interviewService) GetEmotions(ctx context.Context, id uuid.UUID) ([]*dto.EmotionSnapshotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	snapshots, err := uow.EmotionSnapshotRepository().FindAll(ctx,
		specification.BySessionID{SessionID: id},
		specification.OrderBy{Field: "timestamp"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EmotionSnapshotResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		result = append(result, &dto.EmotionSnapshotResponse{
			Timestamp:       snap.Timestamp,
			Source:          snap.Source,
			Emotions:        snap.Emotions,
			DominantEmotion: snap.DominantEmotion,
			StressScore:     snap.StressScore,
			ConfidenceScore: snap.ConfidenceScore,
		})
	}
	return result, nil
}

func (s *interviewService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.InterviewSession, error) {
	session, err := uow.InterviewSessionRepository().FindOne(ctx, specification.ByID{ID: id}, specification.WithTopic{})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrSessionNotFound)
	}
	return session, nil
}

func toInterviewResponse(s *entity.InterviewSession) *dto.InterviewResponse {
	return &dto.InterviewResponse{
		Id:               s.Id,
		SessionType:      string(s.SessionType),
		TopicId:          s.TopicId,
		TopicName:        s.TopicName,
		Difficulty:       s.Difficulty,
		JobTitle:         s.JobTitle,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		StartedAt:        s.StartedAt,
		EndedAt:          s.EndedAt,
		DurationSeconds:  s.DurationSeconds,
		OverallScore:     s.OverallScore,
		Transcript:       s.Transcript,
		Feedback:         s.Feedback,
		ResumeStructured: s.ResumeStructured,
	}
}
