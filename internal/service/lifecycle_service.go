package service

import (
	"context"
	"fmt"

	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/pkg/events"
	natsevents "ai-interview-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	completedSubject = "events." + events.InterviewCompleted
	lifecycleDurable = "interview-feedback-scheduler"
)

// FeedbackScheduler queues background feedback for a session.
type FeedbackScheduler interface {
	EnqueueFeedback(ctx context.Context, sessionId uuid.UUID) error
}

type ILifecycleService interface {
	Start(ctx context.Context) error
	HandleCompleted(ctx context.Context, event events.Event) error
}

type lifecycleService struct {
	subscriber *natsevents.Subscriber
	scheduler  FeedbackScheduler
	logger     logger.ILogger
}

// NewLifecycleService turns INTERVIEW_COMPLETED events from the event bus
// into feedback jobs.
func NewLifecycleService(subscriber *natsevents.Subscriber, scheduler FeedbackScheduler, log logger.ILogger) ILifecycleService {
	return &lifecycleService{
		subscriber: subscriber,
		scheduler:  scheduler,
		logger:     log,
	}
}

func (s *lifecycleService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		return fmt.Errorf("no event subscriber configured")
	}
	return s.subscriber.Subscribe(ctx, completedSubject, lifecycleDurable, s.HandleCompleted)
}

func (s *lifecycleService) HandleCompleted(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	raw, _ := payload["session_id"].(string)
	sessionId, err := uuid.Parse(raw)
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		s.logger.Warn("LifecycleService", "Completed event without a valid session id", map[string]interface{}{"payload": payload})
		return nil
	}

	if entries, ok := payload["entries"].(float64); ok && entries == 0 {
		return nil
	}

	if err := s.scheduler.EnqueueFeedback(ctx, sessionId); err != nil {
		return fmt.Errorf("enqueue feedback for %s: %w", sessionId, err)
	}

	s.logger.Info("LifecycleService", "Feedback scheduled", map[string]interface{}{"session_id": sessionId.String()})
	return nil
}
