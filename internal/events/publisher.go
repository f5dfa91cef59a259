package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
	"github.com/gometeo/citydash/internal/model"
)

// Publisher ships lookup events somewhere. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event model.LookupEvent) error
	Name() string
	Close() error
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, model.LookupEvent) error { return nil }
func (Nop) Name() string                                     { return "disabled" }
func (Nop) Close() error                                     { return nil }

// KafkaPublisher writes events to a topic with a sync producer, keyed by
// lookup kind.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher connects a sync producer to brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}
	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event model.LookupEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode lookup event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Kind),
		Value: sarama.ByteEncoder(bytes),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send lookup event: %w", err)
	}

	p.logger.Debug("Lookup event published",
		"id", event.ID,
		"kind", event.Kind,
		"partition", partition,
		"offset", offset)
	return nil
}

func (p *KafkaPublisher) Name() string { return "kafka" }

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
