package message

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/internal/messaging"
)

// OrderMessageController mirrors order snapshots published by the host
// platform into the engine's database.
type OrderMessageController struct {
	service *order.Service
}

// NewOrderMessageController creates a new order message controller.
func NewOrderMessageController(s *order.Service) *OrderMessageController {
	return &OrderMessageController{service: s}
}

// HandleMessage processes a single order snapshot message.
func (c *OrderMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		slog.ErrorContext(ctx, "failed to unmarshal envelope", "key", string(key), "error", err)
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	var ord order.Order
	if err := json.Unmarshal(env.Payload, &ord); err != nil {
		slog.ErrorContext(ctx, "failed to unmarshal order snapshot",
			"event_id", env.EventID, "error", err)
		return fmt.Errorf("unmarshal order snapshot: %w", err)
	}

	if err := c.service.Sync(ctx, &ord); err != nil {
		slog.ErrorContext(ctx, "failed to sync order",
			"event_id", env.EventID, "order_id", ord.ID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "order snapshot synced",
		"event_id", env.EventID, "order_id", ord.ID, "state", ord.State)
	return nil
}
