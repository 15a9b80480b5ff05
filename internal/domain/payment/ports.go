package payment

import (
	"context"
	"time"

	"AfterpayEngine/internal/domain/order"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=payment

// Gateway posts JSON bodies to the provider API and returns the decoded
// response. The provider answers with an object on most endpoints and with an
// array of messages on some validation failures, hence the untyped return.
type Gateway interface {
	Post(ctx context.Context, url string, headers map[string]string, body any) (any, error)
}

// Product is the catalog projection needed for line item data.
type Product struct {
	ID       string
	Number   string
	Label    string
	PageURL  string
	ImageURL string
}

// ProductCatalog resolves products referenced by order line items. A missing
// product is a data integrity error and aborts payload building.
type ProductCatalog interface {
	GetByID(ctx context.Context, id string) (*Product, error)
}

// Session keys for checkout state scoped to a customer session token.
const (
	SessionKeyInstallmentPlan = "AfterpayInstallmentPlan"
	SessionKeyBankAccount     = "AfterpayBankAccount"
)

// SessionStore keeps per-session checkout state (selected installment plan,
// entered bank account).
type SessionStore interface {
	Get(token, key string) (string, bool)
	Set(token, key, value string)
	Remove(token, key string)
}

// TransitionTrigger asks the host platform to run a state-machine transition.
type TransitionTrigger interface {
	Transition(ctx context.Context, entityType, entityID string, action TransitionAction) error
}

// CartRestorer puts the line items of a failed order back into the customer's
// cart on the host platform.
type CartRestorer interface {
	RestoreCart(ctx context.Context, sessionToken string, items []order.LineItem) error
}

// Event is an audit record of one provider interaction.
type Event struct {
	OrderID       string    `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	Kind          string    `json:"kind"` // authorize | capture
	Method        string    `json:"method,omitempty"`
	Mode          string    `json:"mode"`
	Success       bool      `json:"success"`
	Message       string    `json:"message,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CaptureNumber string    `json:"capture_number,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventSink records payment events for auditing. Sinks must not fail the
// payment flow; errors are logged by callers and otherwise ignored.
type EventSink interface {
	RecordPaymentEvent(ctx context.Context, event Event) error
}

// ConfigProvider resolves the merchant settings for a sales channel.
type ConfigProvider interface {
	Merchant(salesChannelID string) (MerchantConfig, error)
}
