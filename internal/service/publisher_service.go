package service

import (
	"context"
	"encoding/json"
	"fmt"

	"invoxa-search-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishSuggestionUsage(ctx context.Context, msg *dto.SuggestionUsageMessage) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) PublishSuggestionUsage(ctx context.Context, msg *dto.SuggestionUsageMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal usage message: %w", err)
	}

	wmMsg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, wmMsg); err != nil {
		return fmt.Errorf("publish usage message: %w", err)
	}
	return nil
}
