package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"

	"AfterpayEngine/internal/domain/payment"
)

var _ payment.EventSink = (*EventSink)(nil)

// EventSink stores payment events in OpenSearch for auditing.
type EventSink struct {
	client *opensearch.Client
	index  string
}

func NewEventSink(ctx context.Context, urls []string, index string) (*EventSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &EventSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *EventSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"order_id":       map[string]any{"type": "keyword"},
				"order_number":   map[string]any{"type": "keyword"},
				"kind":           map[string]any{"type": "keyword"},
				"method":         map[string]any{"type": "keyword"},
				"mode":           map[string]any{"type": "keyword"},
				"success":        map[string]any{"type": "boolean"},
				"message":        map[string]any{"type": "text"},
				"transaction_id": map[string]any{"type": "keyword"},
				"capture_number": map[string]any{"type": "keyword"},
				"amount":         map[string]any{"type": "double"},
				"currency":       map[string]any{"type": "keyword"},
				"occurred_at":    map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

func (s *EventSink) RecordPaymentEvent(ctx context.Context, event payment.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(uuid.NewString()),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}
