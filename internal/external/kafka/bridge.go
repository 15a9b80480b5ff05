package kafka

import (
	"context"
	"fmt"

	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/internal/domain/payment"
	"AfterpayEngine/internal/messaging"
)

// The host platform owns order state machines and customer carts; the engine
// only publishes commands and the host applies them.

var _ payment.TransitionTrigger = (*TransitionBridge)(nil)

// TransitionBridge publishes state-machine transition commands.
type TransitionBridge struct {
	publisher messaging.Publisher
}

func NewTransitionBridge(publisher messaging.Publisher) *TransitionBridge {
	return &TransitionBridge{publisher: publisher}
}

type transitionCommand struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
}

func (b *TransitionBridge) Transition(ctx context.Context, entityType, entityID string, action payment.TransitionAction) error {
	env, err := messaging.NewEnvelope(entityID, "state_machine.transition", transitionCommand{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     string(action),
	})
	if err != nil {
		return fmt.Errorf("build transition envelope: %w", err)
	}
	if err := b.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish transition: %w", err)
	}
	return nil
}

var _ payment.CartRestorer = (*CartBridge)(nil)

// CartBridge publishes cart restore commands for rejected orders.
type CartBridge struct {
	publisher messaging.Publisher
}

func NewCartBridge(publisher messaging.Publisher) *CartBridge {
	return &CartBridge{publisher: publisher}
}

type cartRestoreCommand struct {
	SessionToken string           `json:"session_token"`
	Items        []order.LineItem `json:"items"`
}

func (b *CartBridge) RestoreCart(ctx context.Context, sessionToken string, items []order.LineItem) error {
	env, err := messaging.NewEnvelope(sessionToken, "cart.restore", cartRestoreCommand{
		SessionToken: sessionToken,
		Items:        items,
	})
	if err != nil {
		return fmt.Errorf("build cart restore envelope: %w", err)
	}
	if err := b.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish cart restore: %w", err)
	}
	return nil
}
