package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_Success(t *testing.T) {
	t.Parallel()

	t.Run("should accept an authorized checkout", func(t *testing.T) {
		// given
		raw := map[string]any{
			"outcome":    "Accepted",
			"checkoutId": "chk-123",
		}

		// when
		out := Interpret(raw)

		// then
		assert.True(t, out.Success)
		assert.Equal(t, "chk-123", out.CheckoutID)
	})

	t.Run("should accept a valid bank account response", func(t *testing.T) {
		out := Interpret(map[string]any{"isValid": true})

		assert.True(t, out.Success)
	})

	t.Run("should reject an invalid bank account response", func(t *testing.T) {
		out := Interpret(map[string]any{"isValid": false, "message": "IBAN checksum failed"})

		assert.False(t, out.Success)
		assert.Equal(t, "IBAN checksum failed", out.Message)
	})

	t.Run("should accept a contract lookup with a real contract id", func(t *testing.T) {
		// given
		raw := map[string]any{
			"contractId":   "5cc2b1c7-9f7a-4a7e-9a50-7a78b8a1f3a2",
			"contractList": []any{map[string]any{"contractType": "Invoice"}},
		}

		// when
		out := Interpret(raw)

		// then
		assert.True(t, out.Success)
	})

	t.Run("should reject a contract lookup with the nil contract id", func(t *testing.T) {
		// given
		raw := map[string]any{
			"contractId":   "00000000-0000-0000-0000-000000000000",
			"contractList": []any{map[string]any{"contractType": "Invoice"}},
		}

		// when
		out := Interpret(raw)

		// then
		assert.False(t, out.Success)
	})

	t.Run("should accept a capture with a capture number", func(t *testing.T) {
		out := Interpret(map[string]any{"captureNumber": "CAP-1"})

		assert.True(t, out.Success)
		assert.Equal(t, "CAP-1", out.CaptureNumber)
	})

	t.Run("should accept and decode installment plans", func(t *testing.T) {
		// given
		raw := map[string]any{
			"availableInstallmentPlans": []any{
				map[string]any{
					"installmentProfileNumber": float64(512),
					"basketAmount":             float64(119),
					"numberOfInstallments":     float64(6),
					"installmentAmount":        20.5,
					"interestRate":             9.9,
				},
			},
		}

		// when
		out := Interpret(raw)

		// then
		assert.True(t, out.Success)
		require.Len(t, out.AvailableInstallmentPlans, 1)
		plan := out.AvailableInstallmentPlans[0]
		assert.Equal(t, 512, plan.ProfileNumber)
		assert.Equal(t, 6, plan.NumberOfInstallments)
		assert.Equal(t, 9.9, plan.InterestRate)
	})

	t.Run("should accept refunds and carry the totals", func(t *testing.T) {
		// given
		raw := map[string]any{
			"refundNumbers":         []any{"R-1", "R-2"},
			"totalAuthorizedAmount": 119.0,
			"totalCapturedAmount":   119.0,
		}

		// when
		out := Interpret(raw)

		// then
		assert.True(t, out.Success)
		assert.Equal(t, []string{"R-1", "R-2"}, out.RefundNumbers)
		assert.Equal(t, 119.0, out.TotalAuthorizedAmount)
		assert.Equal(t, 119.0, out.TotalCapturedAmount)
	})

	t.Run("should collect payment methods", func(t *testing.T) {
		// given
		raw := map[string]any{
			"outcome":    "Accepted",
			"checkoutId": "chk-1",
			"paymentMethods": []any{
				map[string]any{"directDebit": map[string]any{"available": true}},
			},
		}

		// when
		out := Interpret(raw)

		// then
		require.Len(t, out.PaymentMethods, 1)
		assert.True(t, methodAvailable(out.PaymentMethods, "directDebit"))
		assert.False(t, methodAvailable(out.PaymentMethods, "installment"))
	})

	t.Run("should treat nil and empty responses as failures", func(t *testing.T) {
		assert.False(t, Interpret(nil).Success)
		assert.False(t, Interpret(map[string]any{}).Success)
	})
}

func TestInterpret_FailureMessages(t *testing.T) {
	t.Parallel()

	t.Run("should join risk check messages and trim the trailing separator", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{"customerFacingMessage": "First problem."},
				map[string]any{"customerFacingMessage": "Second problem."},
			},
			"customerFacingMessage": "top level, ignored",
			"message":               "technical, ignored",
		}

		// when
		out := Interpret(raw)

		// then
		assert.Equal(t, "First problem.<br/>Second problem.", out.Message)
	})

	t.Run("should fall back to action code texts when the risk message is silent", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{"actionCode": "OfferSecurePaymentMethods"},
			},
		}

		// when
		out := Interpret(raw)

		// then
		assert.Equal(t, actionCodeMessages["OfferSecurePaymentMethods"], out.Message)
	})

	t.Run("should prefer the list wrapped customer facing message over the plain message", func(t *testing.T) {
		// given
		raw := []any{
			map[string]any{"customerFacingMessage": "Please check your input.", "message": "field invalid"},
		}

		// when
		out := Interpret(raw)

		// then
		assert.False(t, out.Success)
		assert.Equal(t, "Please check your input.", out.Message)
	})

	t.Run("should use the top level customer facing message before the technical one", func(t *testing.T) {
		// given
		raw := map[string]any{
			"customerFacingMessage": "Something went wrong.",
			"message":               "internal detail",
		}

		// when
		out := Interpret(raw)

		// then
		assert.Equal(t, "Something went wrong.", out.Message)
	})

	t.Run("should fall through to the technical message", func(t *testing.T) {
		out := Interpret(map[string]any{"message": "internal detail"})

		assert.Equal(t, "internal detail", out.Message)
	})
}

func TestInterpret_AddressSuggestion(t *testing.T) {
	t.Parallel()

	t.Run("should extract the proposed address including the street number", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{"actionCode": "AskConsumerToReEnterData", "customerFacingMessage": "Check your address."},
			},
			"customer": map[string]any{
				"addressList": []any{
					map[string]any{
						"street":       "Keizersgracht",
						"streetNumber": "1",
						"postalCode":   "1015 CC",
						"postalPlace":  "Amsterdam",
						"countryCode":  "NL",
					},
				},
			},
		}

		// when
		out := Interpret(raw)

		// then
		require.NotNil(t, out.SuggestedAddress)
		assert.Equal(t, "Keizersgracht 1", out.SuggestedAddress.Street)
		assert.Equal(t, "1015 CC", out.SuggestedAddress.Zipcode)
		assert.Equal(t, "Amsterdam", out.SuggestedAddress.City)
		assert.Equal(t, "NL", out.SuggestedAddress.Country)
		assert.False(t, out.AddressFlagged)
	})

	t.Run("should flag the address when no candidate is proposed", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{"actionCode": "AskConsumerToConfirm"},
			},
		}

		// when
		out := Interpret(raw)

		// then
		assert.Nil(t, out.SuggestedAddress)
		assert.True(t, out.AddressFlagged)
	})

	t.Run("should prefer the candidate carried by the risk message itself", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{
					"actionCode": "AskConsumerToReEnterData",
					"customer": map[string]any{
						"addressList": []any{
							map[string]any{
								"street":       "Main",
								"streetNumber": "1",
								"postalCode":   "12345",
								"postalPlace":  "Berlin",
								"countryCode":  "DE",
							},
						},
					},
				},
			},
			"customer": map[string]any{
				"addressList": []any{
					map[string]any{"street": "Herengracht", "streetNumber": "2"},
				},
			},
		}

		// when
		out := Interpret(raw)

		// then
		require.NotNil(t, out.SuggestedAddress)
		assert.Equal(t, "Main 1", out.SuggestedAddress.Street)
		assert.Equal(t, "12345", out.SuggestedAddress.Zipcode)
		assert.Equal(t, "Berlin", out.SuggestedAddress.City)
		assert.Equal(t, "DE", out.SuggestedAddress.Country)
		assert.False(t, out.AddressFlagged)
	})

	t.Run("should let only the first qualifying risk message decide", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{
					"actionCode": "AskConsumerToConfirm",
					"customer": map[string]any{
						"addressList": []any{
							map[string]any{"street": "Herengracht", "streetNumber": "2"},
						},
					},
				},
				map[string]any{
					"actionCode": "AskConsumerToReEnterData",
					"customer": map[string]any{
						"addressList": []any{
							map[string]any{"street": "Prinsengracht", "streetNumber": "3"},
						},
					},
				},
			},
		}

		// when
		out := Interpret(raw)

		// then
		require.NotNil(t, out.SuggestedAddress)
		assert.Equal(t, "Herengracht 2", out.SuggestedAddress.Street)
		assert.False(t, out.AddressFlagged)
	})

	t.Run("should keep an earlier flag even when a later message proposes", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{"actionCode": "AskConsumerToConfirm"},
				map[string]any{
					"actionCode": "AskConsumerToReEnterData",
					"customer": map[string]any{
						"addressList": []any{
							map[string]any{"street": "Prinsengracht", "streetNumber": "3"},
						},
					},
				},
			},
		}

		// when
		out := Interpret(raw)

		// then
		assert.True(t, out.AddressFlagged)
		assert.Nil(t, out.SuggestedAddress)
	})

	t.Run("should not suggest an address for unrelated action codes", func(t *testing.T) {
		// given
		raw := map[string]any{
			"riskCheckMessages": []any{
				map[string]any{"actionCode": "OfferSecurePaymentMethods"},
			},
			"customer": map[string]any{
				"addressList": []any{
					map[string]any{"street": "Herengracht", "streetNumber": "2"},
				},
			},
		}

		// when
		out := Interpret(raw)

		// then
		assert.Nil(t, out.SuggestedAddress)
		assert.False(t, out.AddressFlagged)
	})
}
