package order

import "context"

//go:generate mockgen -source=port.go -destination=mock_port.go -package=order

// CapturableQuery narrows the capture sweep to orders whose order, payment
// and delivery states all sit in the configured sets and whose transaction
// uses one of the given payment method handlers.
type CapturableQuery struct {
	PaymentMethods []string
	OrderStates    []string
	PaymentStates  []string
	DeliveryStates []string
}

// Complete reports whether every state set is configured. The sweep must not
// run with a partial query.
func (q CapturableQuery) Complete() bool {
	return len(q.OrderStates) > 0 && len(q.PaymentStates) > 0 && len(q.DeliveryStates) > 0
}

type Repo interface {
	// Upsert mirrors an order aggregate received from the host platform.
	Upsert(ctx context.Context, ord *Order) error
	// GetByID loads a full order aggregate. Returns apperror.ErrOrderNotFound
	// when no row matches.
	GetByID(ctx context.Context, id string) (*Order, error)
	// FindCapturable returns authorized, not-yet-captured orders matching the
	// query, oldest first.
	FindCapturable(ctx context.Context, q CapturableQuery) ([]Order, error)
	// SetCustomFields merges the given fields into the order's key-value bag.
	SetCustomFields(ctx context.Context, orderID string, fields CustomFields) error
	// Delete removes the order aggregate, used to roll back a rejected payment.
	Delete(ctx context.Context, orderID string) error
}
