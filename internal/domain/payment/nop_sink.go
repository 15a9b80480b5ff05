package payment

import "context"

// NopEventSink discards payment events, used when no audit store is
// configured.
type NopEventSink struct{}

func (NopEventSink) RecordPaymentEvent(context.Context, Event) error {
	return nil
}
