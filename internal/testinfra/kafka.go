//go:build integration
// +build integration

package testinfra

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

type KafkaContainer struct {
	Container        *kafka.KafkaContainer
	Brokers          []string
	OrdersTopic      string
	TransitionsTopic string
	CartRestoreTopic string
	OrdersGroup      string
}

func NewKafka(ctx context.Context) (*KafkaContainer, error) {
	container, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		kafka.WithClusterID("test-cluster"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	brokers, err := container.Brokers(ctx)
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get brokers: %w", err)
	}

	// Unique topics and groups per test run
	suffix := uuid.New().String()[:8]
	ordersTopic := fmt.Sprintf("test-orders-%s", suffix)
	transitionsTopic := fmt.Sprintf("test-transitions-%s", suffix)
	cartRestoreTopic := fmt.Sprintf("test-cart-restore-%s", suffix)

	// Create topics explicitly (so consumers can subscribe before first message)
	for _, topic := range []string{ordersTopic, transitionsTopic, cartRestoreTopic} {
		if err := createTopic(ctx, container, topic, 3); err != nil {
			_ = container.Terminate(ctx)
			return nil, fmt.Errorf("failed to create topic %s: %w", topic, err)
		}
	}

	return &KafkaContainer{
		Container:        container,
		Brokers:          brokers,
		OrdersTopic:      ordersTopic,
		TransitionsTopic: transitionsTopic,
		CartRestoreTopic: cartRestoreTopic,
		OrdersGroup:      fmt.Sprintf("test-group-orders-%s", suffix),
	}, nil
}

func createTopic(ctx context.Context, c *kafka.KafkaContainer, topic string, partitions int) error {
	// Small retry because Kafka may be "up" but not yet ready for admin ops.
	const attempts = 20
	for i := 0; i < attempts; i++ {
		exitCode, reader, err := c.Exec(ctx, []string{
			"kafka-topics",
			"--bootstrap-server", "localhost:9092",
			"--create",
			"--if-not-exists",
			"--topic", topic,
			"--partitions", fmt.Sprintf("%d", partitions),
			"--replication-factor", "1",
		})
		if err == nil && exitCode == 0 {
			return nil
		}

		var detail string
		if reader != nil {
			out, _ := io.ReadAll(reader)
			detail = strings.TrimSpace(string(out))
		}
		if i == attempts-1 {
			return fmt.Errorf("create topic %s: exit code %d, err %v: %s", topic, exitCode, err, detail)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return nil
}

func (c *KafkaContainer) Cleanup(ctx context.Context) {
	if c.Container != nil {
		c.Container.Terminate(ctx)
	}
}
