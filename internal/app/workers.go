package app

import (
	"context"
	"log/slog"

	"AfterpayEngine/config"
	"AfterpayEngine/internal/controller/message"
	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/internal/external/kafka"
	"AfterpayEngine/internal/messaging"
)

// StartWorkers starts the Kafka consumer mirroring host order snapshots.
// It runs in a separate goroutine and stops when ctx is cancelled.
func StartWorkers(ctx context.Context, cfg config.Config, orderService *order.Service) {
	if len(cfg.KafkaBrokers) == 0 {
		slog.Warn("kafka brokers not configured, order sync disabled")
		return
	}

	controller := message.NewOrderMessageController(orderService)
	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaOrdersTopic, cfg.KafkaOrdersConsumerGroup)
	runner := messaging.NewRunner([]messaging.Worker{consumer}, controller.HandleMessage)

	go func() {
		slog.Info("starting order snapshot consumer",
			"topic", cfg.KafkaOrdersTopic, "group", cfg.KafkaOrdersConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			slog.Error("order snapshot runner failed", "error", err)
		}
	}()
}
