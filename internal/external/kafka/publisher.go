package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"AfterpayEngine/internal/messaging"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a new Kafka publisher.
func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer}
}

// Publish sends an envelope to Kafka.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish message",
			"topic", p.writer.Topic, "key", env.Key, "error", err)
		return err
	}

	slog.DebugContext(ctx, "message published",
		"topic", p.writer.Topic, "key", env.Key, "event_id", env.EventID)
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
