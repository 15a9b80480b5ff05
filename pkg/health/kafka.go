package health

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// KafkaChecker checks Kafka broker connectivity.
type KafkaChecker struct {
	brokers []string
}

// NewKafkaChecker creates a new Kafka health checker.
func NewKafkaChecker(brokers []string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers}
}

// Name returns "kafka".
func (c *KafkaChecker) Name() string {
	return "kafka"
}

// Check dials the first reachable broker.
func (c *KafkaChecker) Check(ctx context.Context) Result {
	if len(c.brokers) == 0 {
		return Result{Status: StatusDown, Message: "no brokers configured"}
	}

	var lastErr error
	for _, broker := range c.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		_ = conn.Close()
		return Result{Status: StatusUp}
	}
	return Result{Status: StatusDown, Message: fmt.Sprintf("dial brokers: %v", lastErr)}
}
