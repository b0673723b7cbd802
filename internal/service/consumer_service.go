package service

import (
	"context"
	"encoding/json"

	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/pkg/serverutils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	feedbackService IFeedbackService
	logger          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	feedbackService IFeedbackService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		feedbackService: feedbackService,
		logger:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.GenerateFeedbackMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("FeedbackConsumer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	fields := map[string]interface{}{"session_id": payload.SessionId.String()}
	cs.logger.Info("FeedbackConsumer", "Generating feedback", fields)

	// Jobs are never redelivered; failures are logged and dropped.
	defer msg.Ack()

	if _, err := cs.feedbackService.Generate(ctx, payload.SessionId); err != nil {
		details := map[string]interface{}{
			"session_id": payload.SessionId.String(),
			"error":      err.Error(),
		}
		if serverutils.StatusOf(err) < 500 {
			cs.logger.Warn("FeedbackConsumer", "Skipping feedback job", details)
		} else {
			cs.logger.Error("FeedbackConsumer", "Feedback job failed", details)
		}
		return
	}

	cs.logger.Info("FeedbackConsumer", "Feedback stored", fields)
}
