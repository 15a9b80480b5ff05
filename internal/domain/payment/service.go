package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"AfterpayEngine/internal/controller/apperror"
	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/pkg/metrics"
)

// RejectionError is returned when the provider refuses an authorization. It
// carries the customer-facing message and, when the risk check proposed one,
// a corrected address.
type RejectionError struct {
	Message          string
	SuggestedAddress *AddressSuggestion
	AddressFlagged   bool
}

func (e *RejectionError) Error() string {
	return e.Message
}

type Service struct {
	orders      order.Repo
	gateway     Gateway
	config      ConfigProvider
	sessions    SessionStore
	transitions TransitionTrigger
	carts       CartRestorer
	audit       EventSink
	builder     *PayloadBuilder
}

func NewService(
	orders order.Repo,
	gateway Gateway,
	config ConfigProvider,
	sessions SessionStore,
	transitions TransitionTrigger,
	carts CartRestorer,
	audit EventSink,
	builder *PayloadBuilder,
) *Service {
	return &Service{
		orders:      orders,
		gateway:     gateway,
		config:      config,
		sessions:    sessions,
		transitions: transitions,
		carts:       carts,
		audit:       audit,
		builder:     builder,
	}
}

// Authorize runs the full authorization flow for a freshly placed order.
// On any failure the order is rolled back: its line items go back into the
// customer's cart and the order is deleted, so the customer can retry from
// checkout.
func (s *Service) Authorize(ctx context.Context, ord *order.Order, data AuthorizeData) error {
	err := s.authorize(ctx, ord, data)
	if err == nil {
		metrics.AuthorizeAttempts.WithLabelValues(string(data.Method), "success").Inc()
		return nil
	}

	metrics.AuthorizeAttempts.WithLabelValues(string(data.Method), "failure").Inc()
	slog.ErrorContext(ctx, "payment authorization failed",
		"order_id", ord.ID, "method", data.Method, "error", err)

	if rbErr := s.rollback(ctx, ord, data.SessionToken); rbErr != nil {
		return errors.Join(err, rbErr)
	}
	return err
}

func (s *Service) authorize(ctx context.Context, ord *order.Order, data AuthorizeData) error {
	cfg, err := s.config.Merchant(ord.SalesChannelID)
	if err != nil {
		return fmt.Errorf("resolve merchant config: %w", err)
	}

	pay, err := s.paymentBlock(ctx, ord, cfg, data)
	if err != nil {
		return err
	}

	session, err := newAPISession(cfg, ord.BillingAddress.CountryCode, "")
	if err != nil {
		return err
	}

	payload, err := s.builder.AuthorizePayload(ctx, ord, cfg, data, pay)
	if err != nil {
		return fmt.Errorf("build authorize payload: %w", err)
	}

	raw, err := s.gateway.Post(ctx, session.endpoint("checkout/authorize"), session.headers(), payload)
	if err != nil {
		// A transport failure is indistinguishable from a rejection for the
		// customer; interpret it as an empty response.
		slog.ErrorContext(ctx, "authorize call failed", "order_id", ord.ID, "error", err)
		raw = nil
	}

	outcome := Interpret(raw)
	if !outcome.Success {
		msg := outcome.Message
		if msg == "" {
			msg = "Unidentified error"
		}
		s.record(ctx, Event{
			OrderID:     ord.ID,
			OrderNumber: ord.Number,
			Kind:        "authorize",
			Method:      string(data.Method),
			Mode:        string(session.mode),
			Message:     msg,
			Amount:      round2(ord.AmountTotal),
			Currency:    ord.CurrencyCode,
		})
		return &RejectionError{
			Message:          msg,
			SuggestedAddress: outcome.SuggestedAddress,
			AddressFlagged:   outcome.AddressFlagged,
		}
	}

	transactionID := payload.Order.Number
	fields := order.CustomFields{
		order.FieldTransactionID:   transactionID,
		order.FieldTransactionMode: string(session.mode),
	}
	if err := s.orders.SetCustomFields(ctx, ord.ID, fields); err != nil {
		return fmt.Errorf("store transaction reference: %w", err)
	}

	tx, ok := ord.LastTransaction()
	if !ok {
		return apperror.ErrTransactionMissing
	}
	if err := s.transitions.Transition(ctx, EntityOrderTransaction, tx.ID, ActionAuthorize); err != nil {
		return fmt.Errorf("transition to authorized: %w", err)
	}

	s.sessions.Remove(data.SessionToken, SessionKeyInstallmentPlan)
	s.record(ctx, Event{
		OrderID:       ord.ID,
		OrderNumber:   ord.Number,
		Kind:          "authorize",
		Method:        string(data.Method),
		Mode:          string(session.mode),
		Success:       true,
		TransactionID: transactionID,
		Amount:        round2(ord.AmountTotal),
		Currency:      ord.CurrencyCode,
	})
	return nil
}

// paymentBlock assembles the variant-specific payment section and runs the
// variant's pre-checks.
func (s *Service) paymentBlock(ctx context.Context, ord *order.Order, cfg MerchantConfig, data AuthorizeData) (*WirePayment, error) {
	pay := &WirePayment{Type: data.Method.wireType()}
	if !data.Method.usesBankAccount() {
		return pay, nil
	}

	if data.Method == MethodDirectDebit {
		available, err := s.checkAvailability(ctx, ord, cfg, data, "directDebit")
		if err != nil {
			return nil, err
		}
		if !available {
			slog.WarnContext(ctx, "direct debit reported unavailable", "order_id", ord.ID)
		}
	}

	iban := s.bankAccount(ord, data.SessionToken)
	if err := s.validateBankAccount(ctx, cfg, ord.BillingAddress.CountryCode, iban); err != nil {
		return nil, err
	}
	pay.DirectDebit = &WireDirectDebit{BankAccount: iban}

	if data.Method == MethodInstallment {
		plan, ok := s.sessions.Get(data.SessionToken, SessionKeyInstallmentPlan)
		if !ok || plan == "" {
			return nil, apperror.ErrInstallmentNotSelected
		}
		installment, err := s.Installment(ctx, ord.SalesChannelID, ord.BillingAddress.CountryCode, ord.CurrencyCode, plan, round2(ord.AmountTotal))
		if err != nil {
			return nil, err
		}
		if installment == nil {
			return nil, apperror.ErrInstallmentNotValid
		}
		pay.Installment = &WireInstallment{
			ProfileNo:            installment.ProfileNumber,
			CustomerInterestRate: installment.InterestRate,
			NumberOfInstallments: installment.NumberOfInstallments,
		}
	}

	return pay, nil
}

func (s *Service) rollback(ctx context.Context, ord *order.Order, sessionToken string) error {
	if err := s.carts.RestoreCart(ctx, sessionToken, ord.LineItems); err != nil {
		return fmt.Errorf("restore cart: %w", err)
	}
	if err := s.orders.Delete(ctx, ord.ID); err != nil {
		return fmt.Errorf("delete rejected order: %w", err)
	}
	return nil
}

// bankAccount prefers the IBAN entered during this checkout session over the
// one stored on the customer.
func (s *Service) bankAccount(ord *order.Order, sessionToken string) string {
	if iban, ok := s.sessions.Get(sessionToken, SessionKeyBankAccount); ok && iban != "" {
		return iban
	}
	return ord.Customer.IBAN
}

// ValidateBankAccount checks an IBAN against the provider.
func (s *Service) ValidateBankAccount(ctx context.Context, salesChannelID, countryISO, iban string) error {
	cfg, err := s.config.Merchant(salesChannelID)
	if err != nil {
		return fmt.Errorf("resolve merchant config: %w", err)
	}
	return s.validateBankAccount(ctx, cfg, countryISO, iban)
}

func (s *Service) validateBankAccount(ctx context.Context, cfg MerchantConfig, countryISO, iban string) error {
	if iban == "" {
		return apperror.ErrBankAccountNotValid
	}

	session, err := newAPISession(cfg, countryISO, "")
	if err != nil {
		return err
	}

	raw, err := s.gateway.Post(ctx, session.endpoint("validate/bank-account"), session.headers(), map[string]string{"bankAccount": iban})
	if err != nil {
		return fmt.Errorf("validate bank account: %w", err)
	}
	outcome := Interpret(raw)
	if !outcome.Success {
		return fmt.Errorf("%w: %s", apperror.ErrBankAccountNotValid, outcome.Message)
	}
	return nil
}

// AvailableInstallments looks up the installment plans offered for the given
// basket amount. A rejection yields an empty list, not an error.
func (s *Service) AvailableInstallments(ctx context.Context, salesChannelID, countryISO, currency string, amount float64) ([]InstallmentPlan, error) {
	cfg, err := s.config.Merchant(salesChannelID)
	if err != nil {
		return nil, fmt.Errorf("resolve merchant config: %w", err)
	}
	session, err := newAPISession(cfg, countryISO, "")
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"amount":      amount,
		"countryCode": countryISO,
		"currency":    currency,
	}
	raw, err := s.gateway.Post(ctx, session.endpoint("lookup/installment-plans"), session.headers(), body)
	if err != nil {
		return nil, fmt.Errorf("lookup installment plans: %w", err)
	}

	outcome := Interpret(raw)
	if !outcome.Success {
		return nil, nil
	}
	return outcome.AvailableInstallmentPlans, nil
}

// Installment returns the offered plan with the given profile number, nil
// when the provider no longer offers it for this amount.
func (s *Service) Installment(ctx context.Context, salesChannelID, countryISO, currency, plan string, amount float64) (*InstallmentPlan, error) {
	plans, err := s.AvailableInstallments(ctx, salesChannelID, countryISO, currency, amount)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if strconv.Itoa(plans[i].ProfileNumber) == plan {
			return &plans[i], nil
		}
	}
	return nil, nil
}

// checkAvailability asks checkout/payment-methods whether the named variant
// is offered to this customer.
func (s *Service) checkAvailability(ctx context.Context, ord *order.Order, cfg MerchantConfig, data AuthorizeData, paymentName string) (bool, error) {
	session, err := newAPISession(cfg, ord.BillingAddress.CountryCode, "")
	if err != nil {
		return false, err
	}

	payload, err := s.builder.AuthorizePayload(ctx, ord, cfg, data, nil)
	if err != nil {
		return false, fmt.Errorf("build payment-methods payload: %w", err)
	}

	raw, err := s.gateway.Post(ctx, session.endpoint("checkout/payment-methods"), session.headers(), payload)
	if err != nil {
		return false, fmt.Errorf("lookup payment methods: %w", err)
	}

	outcome := Interpret(raw)
	if !outcome.Success || len(outcome.PaymentMethods) == 0 || outcome.CheckoutID == "" {
		return false, fmt.Errorf("%w: %s", apperror.ErrPaymentMethodNotAvailable, outcome.Message)
	}
	return methodAvailable(outcome.PaymentMethods, paymentName), nil
}

// Capture settles an authorized order with the provider. A provider response
// without a capture number leaves the order untouched so the next sweep
// retries it; only data and transport problems surface as errors.
func (s *Service) Capture(ctx context.Context, ord *order.Order) error {
	if !ord.BillingAddress.Complete() {
		slog.ErrorContext(ctx, "order details are not complete", "order_number", ord.Number)
		return fmt.Errorf("%w: order %s", apperror.ErrOrderIncomplete, ord.Number)
	}

	transactionID := ord.CustomFields.TransactionID()
	if transactionID == "" {
		return fmt.Errorf("%w: order %s has no transaction reference", apperror.ErrTransactionMissing, ord.Number)
	}

	cfg, err := s.config.Merchant(ord.SalesChannelID)
	if err != nil {
		return fmt.Errorf("resolve merchant config: %w", err)
	}
	// Capture in the mode the order was authorized in, even if the merchant
	// switched modes since.
	session, err := newAPISession(cfg, ord.BillingAddress.CountryCode, Mode(ord.CustomFields.TransactionMode()))
	if err != nil {
		return err
	}

	payload, err := s.builder.CapturePayload(ctx, ord)
	if err != nil {
		return fmt.Errorf("build capture payload: %w", err)
	}

	raw, err := s.gateway.Post(ctx, session.endpoint("orders/"+transactionID+"/captures"), session.headers(), payload)
	if err != nil {
		metrics.CaptureAttempts.WithLabelValues("failure").Inc()
		return fmt.Errorf("capture call: %w", err)
	}

	outcome := Interpret(raw)
	if outcome.CaptureNumber == "" {
		metrics.CaptureAttempts.WithLabelValues("skipped").Inc()
		slog.WarnContext(ctx, "capture not confirmed",
			"order_number", ord.Number, "message", outcome.Message)
		s.record(ctx, Event{
			OrderID:       ord.ID,
			OrderNumber:   ord.Number,
			Kind:          "capture",
			Mode:          string(session.mode),
			Message:       outcome.Message,
			TransactionID: transactionID,
			Amount:        round2(ord.AmountTotal),
			Currency:      ord.CurrencyCode,
		})
		return nil
	}

	fields := order.CustomFields{
		order.FieldCaptured:      1,
		order.FieldCaptureNumber: outcome.CaptureNumber,
	}
	if err := s.orders.SetCustomFields(ctx, ord.ID, fields); err != nil {
		return fmt.Errorf("store capture number: %w", err)
	}

	tx, ok := ord.LastTransaction()
	if !ok {
		return fmt.Errorf("%w: order %s", apperror.ErrTransactionMissing, ord.Number)
	}
	if err := s.transitions.Transition(ctx, EntityOrderTransaction, tx.ID, ActionPaid); err != nil {
		return fmt.Errorf("transition to paid: %w", err)
	}

	metrics.CaptureAttempts.WithLabelValues("success").Inc()
	s.record(ctx, Event{
		OrderID:       ord.ID,
		OrderNumber:   ord.Number,
		Kind:          "capture",
		Mode:          string(session.mode),
		Success:       true,
		TransactionID: transactionID,
		CaptureNumber: outcome.CaptureNumber,
		Amount:        round2(ord.AmountTotal),
		Currency:      ord.CurrencyCode,
	})
	return nil
}

// CapturePayments runs one capture sweep over all eligible orders. A failure
// on one order never stops the others.
func (s *Service) CapturePayments(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	cfg, err := s.config.Merchant("")
	if err != nil {
		return fmt.Errorf("resolve merchant config: %w", err)
	}

	query := order.CapturableQuery{
		PaymentMethods: Methods(),
		OrderStates:    cfg.CaptureOrderStates,
		PaymentStates:  cfg.CapturePaymentStates,
		DeliveryStates: cfg.CaptureDeliveryStates,
	}
	if !query.Complete() {
		return apperror.ErrCaptureStatesNotConfigured
	}

	orders, err := s.orders.FindCapturable(ctx, query)
	if err != nil {
		return fmt.Errorf("find capturable orders: %w", err)
	}
	metrics.SweepEligibleOrders.Observe(float64(len(orders)))

	for i := range orders {
		if err := s.Capture(ctx, &orders[i]); err != nil {
			slog.ErrorContext(ctx, "capture failed",
				"order_number", orders[i].Number, "error", err)
		}
	}
	return nil
}

func (s *Service) record(ctx context.Context, event Event) {
	event.OccurredAt = time.Now().UTC()
	if err := s.audit.RecordPaymentEvent(ctx, event); err != nil {
		slog.WarnContext(ctx, "record payment event", "error", err)
	}
}
