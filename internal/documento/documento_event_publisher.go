package documento

import (
	"context"
	"encoding/json"

	"licitahub/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=documento_event_publisher.go -destination=mock/documento_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishLifecycle(ctx context.Context, event events.DocumentoLifecycleEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishLifecycle(context.Context, events.DocumentoLifecycleEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishLifecycle(
	ctx context.Context,
	event events.DocumentoLifecycleEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.DocumentoLifecycleTopic,
		Key:   []byte(event.DocumentoID),
		Value: payload,
	})
}
