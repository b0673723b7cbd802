package service

import (
	"context"
	"fmt"
	"strings"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/internal/repository/specification"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/pkg/events"
	"ai-interview-be/pkg/feedback"

	"github.com/google/uuid"
)

const jobDescriptionContextLimit = 500

type IFeedbackService interface {
	Generate(ctx context.Context, sessionId uuid.UUID) (map[string]interface{}, error)
	Get(ctx context.Context, sessionId uuid.UUID) (map[string]interface{}, error)
}

// EventPublisher is satisfied by the NATS publisher; nil disables events.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  *feedback.Generator
	events     EventPublisher
	logger     logger.ILogger
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	generator *feedback.Generator,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		uowFactory: uowFactory,
		generator:  generator,
		events:     eventPublisher,
		logger:     log,
	}
}

func (s *feedbackService) Generate(ctx context.Context, sessionId uuid.UUID) (map[string]interface{}, error) {
	if s.generator == nil {
		return nil, serverutils.NewServiceUnavailableError(constant.ErrAIUnavailable)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrSessionNotFound)
	}
	if len(session.Transcript) == 0 {
		return nil, serverutils.NewBadRequestError(constant.ErrNoTranscript)
	}

	var topic *entity.InterviewTopic
	if session.TopicId != nil {
		topic, err = uow.InterviewTopicRepository().FindOne(ctx, specification.ByID{ID: *session.TopicId})
		if err != nil {
			return nil, err
		}
	}

	snapshots, err := uow.EmotionSnapshotRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "timestamp"},
	)
	if err != nil {
		return nil, err
	}

	samples := make([]feedback.EmotionSample, 0, len(snapshots))
	for _, snap := range snapshots {
		samples = append(samples, feedback.EmotionSample{
			Timestamp:       snap.Timestamp,
			DominantEmotion: snap.DominantEmotion,
			StressScore:     snap.StressScore,
			ConfidenceScore: snap.ConfidenceScore,
		})
	}

	report, err := s.generator.Generate(ctx, feedback.Input{
		Context:    buildFeedbackContext(session, topic),
		Transcript: session.Transcript,
		Emotions:   samples,
	})
	if err != nil {
		s.logger.Error("FeedbackService", "Feedback generation failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return nil, serverutils.NewServiceUnavailableError(err.Error())
	}

	result := report.Map()
	score := report.OverallScore
	session.Feedback = result
	session.OverallScore = &score

	if err := uow.InterviewSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if s.events != nil {
		evt := events.New(events.FeedbackGenerated, map[string]interface{}{
			"session_id":    sessionId.String(),
			"overall_score": score,
		})
		if err := s.events.Publish(ctx, evt); err != nil {
			s.logger.Warn("FeedbackService", "Failed to publish feedback event", map[string]interface{}{"error": err.Error()})
		}
	}

	return result, nil
}

func (s *feedbackService) Get(ctx context.Context, sessionId uuid.UUID) (map[string]interface{}, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.InterviewSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError(constant.ErrSessionNotFound)
	}
	if len(session.Feedback) == 0 {
		return nil, serverutils.NewNotFoundError(constant.ErrNoFeedback)
	}
	return session.Feedback, nil
}

func buildFeedbackContext(session *entity.InterviewSession, topic *entity.InterviewTopic) string {
	var b strings.Builder

	switch {
	case topic != nil:
		fmt.Fprintf(&b, "Topic: %s (%s)\n", topic.Name, topic.Category)
		if len(topic.Subtopics) > 0 {
			fmt.Fprintf(&b, "Subtopics: %s\n", strings.Join(topic.Subtopics, ", "))
		}
	case session.SessionType == entity.SessionTypeCustom:
		title := session.JobTitle
		if title == "" {
			title = constant.DefaultCustomJobTitle
		}
		fmt.Fprintf(&b, "Job Title: %s\n", title)
		if session.JobDescription != "" {
			jd := []rune(session.JobDescription)
			if len(jd) > jobDescriptionContextLimit {
				jd = jd[:jobDescriptionContextLimit]
			}
			fmt.Fprintf(&b, "Job Description: %s\n", string(jd))
		}
	}

	fmt.Fprintf(&b, "Difficulty: %s\n", session.Difficulty)
	fmt.Fprintf(&b, "Duration: %.0f seconds", session.DurationSeconds)
	return b.String()
}
