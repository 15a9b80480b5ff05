package payment

import (
	"fmt"
)

// Method identifies one of the supported payment method variants.
type Method string

const (
	MethodInvoice     Method = "afterpay_invoice"
	MethodDirectDebit Method = "afterpay_direct_debit"
	MethodInstallment Method = "afterpay_installment"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodInvoice, MethodDirectDebit, MethodInstallment:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// Methods lists every handler identifier, used to scope the capture sweep to
// orders paid through this engine.
func Methods() []string {
	return []string{string(MethodInvoice), string(MethodDirectDebit), string(MethodInstallment)}
}

// usesBankAccount reports whether the variant debits a bank account and thus
// requires a validated IBAN.
func (m Method) usesBankAccount() bool {
	return m == MethodDirectDebit || m == MethodInstallment
}

// wireType returns the payment type expected by the provider API. Direct
// debit rides on the Invoice type with a directDebit block attached.
func (m Method) wireType() string {
	if m == MethodInstallment {
		return "Installment"
	}
	return "Invoice"
}

// TransitionAction names a state-machine transition requested from the host
// platform.
type TransitionAction string

const (
	ActionAuthorize TransitionAction = "authorize"
	ActionPaid      TransitionAction = "paid"
)

// EntityOrderTransaction is the host entity type whose state machine the
// engine drives.
const EntityOrderTransaction = "order_transaction"
