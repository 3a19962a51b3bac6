package service

import (
	"context"
	"encoding/json"

	"invoxa-search-be/internal/dto"
	"invoxa-search-be/internal/pkg/logger"
	"invoxa-search-be/pkg/events"
	pktNats "invoxa-search-be/pkg/nats"
	"invoxa-search-be/pkg/usage"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	usageStore usage.Store
	natsPub    *pktNats.Publisher
	sysLogger  logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	usageStore usage.Store,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		usageStore: usageStore,
		natsPub:    natsPub,
		sysLogger:  sysLogger,
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
	var payload dto.SuggestionUsageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("usage", "Failed to unmarshal usage message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	rec := usage.Record{
		Id:             uuid.New(),
		SuggestionType: payload.SuggestionType,
		Title:          payload.Title,
		Query:          payload.Query,
		WasUsed:        payload.WasUsed,
		Timestamp:      payload.Timestamp,
	}

	if err := cs.usageStore.Append(ctx, payload.SessionId, rec); err != nil {
		cs.sysLogger.Error("usage", "Failed to append usage record", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
	}

	// Downstream analytics, best-effort
	if cs.natsPub != nil {
		evt := events.NewSuggestionUsageEvent(payload.SessionId, payload.SuggestionType, payload.Title, payload.Query, payload.WasUsed)
		if err := cs.natsPub.Publish(ctx, evt); err != nil {
			cs.sysLogger.Warn("usage", "Failed to publish usage event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}
