package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is the wire format shared by every topic the engine touches. Key
// doubles as the partition key, so messages about one order or one checkout
// session stay ordered.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope wraps a payload, stamping it with a fresh event id and the
// current UTC time.
func NewEnvelope(key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher hands envelopes to the broker.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// MessageHandler processes one consumed message.
type MessageHandler func(ctx context.Context, key, value []byte) error

// Worker consumes a topic until its context ends.
type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}
