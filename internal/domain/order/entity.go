package order

import (
	"time"
)

// Custom-field keys owned by the payment engine. They live in the order's
// extensible key-value bag; nothing else writes them.
const (
	FieldTransactionID   = "afterpay_transaction_id"
	FieldTransactionMode = "afterpay_transaction_mode"
	FieldCaptured        = "afterpay_captured"
	FieldCaptureNumber   = "afterpay_capture_number"
)

// CustomFields is the order's extensible key-value bag. Values decoded from
// JSON arrive as strings, float64 or bool.
type CustomFields map[string]any

func (f CustomFields) String(key string) string {
	if f == nil {
		return ""
	}
	if s, ok := f[key].(string); ok {
		return s
	}
	return ""
}

// TransactionID returns the remote provider's transaction identifier, set on
// successful authorization.
func (f CustomFields) TransactionID() string {
	return f.String(FieldTransactionID)
}

// TransactionMode returns which API environment authorized the order.
func (f CustomFields) TransactionMode() string {
	return f.String(FieldTransactionMode)
}

// Captured reports whether a capture succeeded for the order.
func (f CustomFields) Captured() bool {
	if f == nil {
		return false
	}
	switch v := f[FieldCaptured].(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case int:
		return v == 1
	case string:
		return v == "1"
	default:
		return false
	}
}

// CaptureNumber returns the provider's capture reference. Set if and only if
// Captured reports true.
func (f CustomFields) CaptureNumber() string {
	return f.String(FieldCaptureNumber)
}

type Address struct {
	ID             string `json:"id"`
	Salutation     string `json:"salutation"` // salutation key: mr, mrs, ...
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Street         string `json:"street"`
	Zipcode        string `json:"zipcode"`
	City           string `json:"city"`
	CountryCode    string `json:"country_code"` // ISO 3166-1 alpha-2
	AdditionalLine string `json:"additional_line,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
}

// Complete reports whether the address carries enough data for a capture call.
func (a Address) Complete() bool {
	return a.Street != "" && a.CountryCode != ""
}

type Customer struct {
	Number     string     `json:"number"`
	Email      string     `json:"email"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	FirstLogin *time.Time `json:"first_login,omitempty"`
	OrderCount int        `json:"order_count"`
	IBAN       string     `json:"iban,omitempty"`
}

type LineItemType string

const (
	LineItemProduct   LineItemType = "product"
	LineItemPromotion LineItemType = "promotion"
	LineItemCredit    LineItemType = "credit"
	LineItemCustom    LineItemType = "custom"
)

type LineItem struct {
	Type          LineItemType `json:"type"`
	ProductID     string       `json:"product_id,omitempty"`
	PromotionCode string       `json:"promotion_code,omitempty"`
	Label         string       `json:"label"`
	UnitPrice     float64      `json:"unit_price"` // gross
	Quantity      int          `json:"quantity"`
	TaxRate       float64      `json:"tax_rate"`
	HasTax        bool         `json:"has_tax"`
}

type Transaction struct {
	ID            string `json:"id"`
	PaymentMethod string `json:"payment_method"`
	State         string `json:"state"`
}

type Delivery struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// DocumentTypeInvoice marks generated invoice documents whose configured
// number takes precedence over the shop order number in capture payloads.
const DocumentTypeInvoice = "invoice"

type Document struct {
	Type          string `json:"type"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
}

type Order struct {
	ID                string        `json:"id"`
	Number            string        `json:"number"`
	SalesChannelID    string        `json:"sales_channel_id"`
	CurrencyCode      string        `json:"currency_code"`
	AmountTotal       float64       `json:"amount_total"`
	ShippingTotal     float64       `json:"shipping_total"`
	ShippingTaxRate   float64       `json:"shipping_tax_rate"`
	ShippingTaxAmount float64       `json:"shipping_tax_amount"`
	ShippingHasTax    bool          `json:"shipping_has_tax"`
	State             string        `json:"state"`
	OrderDate         time.Time     `json:"order_date"`
	CustomFields      CustomFields  `json:"custom_fields,omitempty"`
	Customer          Customer      `json:"customer"`
	BillingAddress    Address       `json:"billing_address"`
	ShippingAddress   Address       `json:"shipping_address"`
	LineItems         []LineItem    `json:"line_items"`
	Transactions      []Transaction `json:"transactions"`
	Deliveries        []Delivery    `json:"deliveries"`
	Documents         []Document    `json:"documents,omitempty"`
}

// LastTransaction returns the most recent transaction, the one whose state
// machine the engine drives.
func (o *Order) LastTransaction() (Transaction, bool) {
	if len(o.Transactions) == 0 {
		return Transaction{}, false
	}
	return o.Transactions[len(o.Transactions)-1], true
}

// InvoiceNumber prefers a generated invoice document's configured number and
// falls back to the shop order number.
func (o *Order) InvoiceNumber() string {
	for _, doc := range o.Documents {
		if doc.Type == DocumentTypeInvoice {
			if doc.InvoiceNumber != "" {
				return doc.InvoiceNumber
			}
			break
		}
	}
	return o.Number
}

// CaptureEligible reports whether the order can still be captured: it has
// been authorized and no capture has succeeded yet.
func (o *Order) CaptureEligible() bool {
	return o.CustomFields.TransactionID() != "" && !o.CustomFields.Captured()
}
