package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomFields(t *testing.T) {
	t.Parallel()

	t.Run("should read the capture marker in every decoded shape", func(t *testing.T) {
		testCases := []struct {
			name     string
			value    any
			captured bool
		}{
			{name: "bool true", value: true, captured: true},
			{name: "json number one", value: float64(1), captured: true},
			{name: "int one", value: 1, captured: true},
			{name: "string one", value: "1", captured: true},
			{name: "bool false", value: false, captured: false},
			{name: "json number zero", value: float64(0), captured: false},
			{name: "empty string", value: "", captured: false},
			{name: "absent", value: nil, captured: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				fields := CustomFields{}
				if tc.value != nil {
					fields[FieldCaptured] = tc.value
				}

				assert.Equal(t, tc.captured, fields.Captured())
			})
		}
	})

	t.Run("should tolerate nil maps", func(t *testing.T) {
		var fields CustomFields

		assert.Empty(t, fields.TransactionID())
		assert.False(t, fields.Captured())
	})

	t.Run("should ignore non-string transaction ids", func(t *testing.T) {
		fields := CustomFields{FieldTransactionID: 42}

		assert.Empty(t, fields.TransactionID())
	})
}

func TestOrder_InvoiceNumber(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the invoice document number", func(t *testing.T) {
		ord := Order{
			Number: "10042",
			Documents: []Document{
				{Type: "delivery_note"},
				{Type: DocumentTypeInvoice, InvoiceNumber: "INV-7"},
			},
		}

		assert.Equal(t, "INV-7", ord.InvoiceNumber())
	})

	t.Run("should fall back to the order number when the document carries none", func(t *testing.T) {
		ord := Order{
			Number:    "10042",
			Documents: []Document{{Type: DocumentTypeInvoice}},
		}

		assert.Equal(t, "10042", ord.InvoiceNumber())
	})

	t.Run("should fall back to the order number without documents", func(t *testing.T) {
		ord := Order{Number: "10042"}

		assert.Equal(t, "10042", ord.InvoiceNumber())
	})
}

func TestOrder_CaptureEligible(t *testing.T) {
	t.Parallel()

	t.Run("should require an authorization and no prior capture", func(t *testing.T) {
		authorized := Order{CustomFields: CustomFields{FieldTransactionID: "ref-1"}}
		captured := Order{CustomFields: CustomFields{FieldTransactionID: "ref-1", FieldCaptured: float64(1)}}
		fresh := Order{}

		assert.True(t, authorized.CaptureEligible())
		assert.False(t, captured.CaptureEligible())
		assert.False(t, fresh.CaptureEligible())
	})
}

func TestCapturableQuery_Complete(t *testing.T) {
	t.Parallel()

	full := CapturableQuery{
		PaymentMethods: []string{"afterpay_invoice"},
		OrderStates:    []string{"completed"},
		PaymentStates:  []string{"authorized"},
		DeliveryStates: []string{"shipped"},
	}
	assert.True(t, full.Complete())

	missing := full
	missing.DeliveryStates = nil
	assert.False(t, missing.Complete())
}
