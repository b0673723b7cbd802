package service

import (
	"context"
	"encoding/json"

	"ai-interview-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	EnqueueFeedback(ctx context.Context, sessionId uuid.UUID) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (ps *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}

// EnqueueFeedback schedules background feedback generation for a session.
func (ps *publisherService) EnqueueFeedback(ctx context.Context, sessionId uuid.UUID) error {
	payload, err := json.Marshal(dto.GenerateFeedbackMessage{SessionId: sessionId})
	if err != nil {
		return err
	}
	return ps.Publish(ctx, payload)
}
