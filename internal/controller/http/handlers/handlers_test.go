package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"AfterpayEngine/internal/controller/apperror"
	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/internal/domain/payment"
	"AfterpayEngine/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerFixture struct {
	repo        *order.MockRepo
	gateway     *payment.MockGateway
	config      *payment.MockConfigProvider
	catalog     *payment.MockProductCatalog
	transitions *payment.MockTransitionTrigger
	carts       *payment.MockCartRestorer
	sessions    *session.Store

	payments *payment.Service
	orders   *order.Service
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		repo:        order.NewMockRepo(ctrl),
		gateway:     payment.NewMockGateway(ctrl),
		config:      payment.NewMockConfigProvider(ctrl),
		catalog:     payment.NewMockProductCatalog(ctrl),
		transitions: payment.NewMockTransitionTrigger(ctrl),
		carts:       payment.NewMockCartRestorer(ctrl),
		sessions:    session.NewStore(),
	}

	builder := payment.NewPayloadBuilder(f.catalog, payment.ShopInfo{Provider: "AfterpayEngine", Version: "1.0.0"})
	f.payments = payment.NewService(f.repo, f.gateway, f.config, f.sessions, f.transitions, f.carts, payment.NopEventSink{}, builder)
	f.orders = order.NewService(f.repo)

	return f
}

func (f *handlerFixture) merchantConfig() payment.MerchantConfig {
	return payment.MerchantConfig{
		Mode:       payment.ModeTest,
		LiveAPIURL: "https://live.example/api/v3/",
		TestAPIURL: "https://test.example/api/v3/",
		APIKeys:    map[string]string{"NL": "key-nl"},
	}
}

func storedOrder() *order.Order {
	return &order.Order{
		ID:             "order-1",
		Number:         "10042",
		SalesChannelID: "channel-1",
		CurrencyCode:   "EUR",
		AmountTotal:    119,
		OrderDate:      time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		BillingAddress: order.Address{
			ID:          "addr-1",
			Street:      "Keizersgracht 1",
			Zipcode:     "1015 CC",
			City:        "Amsterdam",
			CountryCode: "NL",
		},
		ShippingAddress: order.Address{ID: "addr-1", Street: "Keizersgracht 1", CountryCode: "NL"},
		LineItems: []order.LineItem{
			{Type: order.LineItemProduct, ProductID: "prod-1", Label: "Wool sweater", UnitPrice: 119, Quantity: 1, TaxRate: 19, HasTax: true},
		},
		Transactions: []order.Transaction{{ID: "tx-1", PaymentMethod: "afterpay_invoice", State: "open"}},
	}
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPaymentHandler_Pay(t *testing.T) {
	newEngine := func(f *handlerFixture) *gin.Engine {
		engine := gin.New()
		handler := NewPaymentHandler(f.payments, f.orders)
		engine.POST("/checkout/afterpay/pay", handler.Pay)
		return engine
	}

	t.Run("should answer 400 on a malformed request", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := doJSON(newEngine(f), http.MethodPost, "/checkout/afterpay/pay", gin.H{"order_id": "order-1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 400 on an unknown payment method", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := doJSON(newEngine(f), http.MethodPost, "/checkout/afterpay/pay", gin.H{
			"order_id":       "order-1",
			"payment_method": "paypal",
			"session_token":  "session-1",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 404 when the order is unknown", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperror.ErrOrderNotFound)

		rec := doJSON(newEngine(f), http.MethodPost, "/checkout/afterpay/pay", gin.H{
			"order_id":       "missing",
			"payment_method": "afterpay_invoice",
			"session_token":  "session-1",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should answer 200 on a successful authorization", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(storedOrder(), nil)
		f.config.EXPECT().Merchant("channel-1").Return(f.merchantConfig(), nil)
		f.catalog.EXPECT().GetByID(gomock.Any(), "prod-1").Return(&payment.Product{Number: "SW-100"}, nil)
		f.gateway.EXPECT().
			Post(gomock.Any(), "https://test.example/api/v3/checkout/authorize", gomock.Any(), gomock.Any()).
			Return(map[string]any{"outcome": "Accepted"}, nil)
		f.repo.EXPECT().SetCustomFields(gomock.Any(), "order-1", gomock.Any()).Return(nil)
		f.transitions.EXPECT().
			Transition(gomock.Any(), payment.EntityOrderTransaction, "tx-1", payment.ActionAuthorize).
			Return(nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/checkout/afterpay/pay", gin.H{
			"order_id":       "order-1",
			"payment_method": "afterpay_invoice",
			"session_token":  "session-1",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	})

	t.Run("should answer 422 with the suggested address on a rejection", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(storedOrder(), nil)
		f.config.EXPECT().Merchant("channel-1").Return(f.merchantConfig(), nil)
		f.catalog.EXPECT().GetByID(gomock.Any(), "prod-1").Return(&payment.Product{Number: "SW-100"}, nil)
		f.gateway.EXPECT().
			Post(gomock.Any(), "https://test.example/api/v3/checkout/authorize", gomock.Any(), gomock.Any()).
			Return(map[string]any{
				"riskCheckMessages": []any{
					map[string]any{"actionCode": "AskConsumerToReEnterData", "customerFacingMessage": "Check your address."},
				},
				"customer": map[string]any{
					"addressList": []any{
						map[string]any{"street": "Keizersgracht", "streetNumber": "1", "postalCode": "1015 CC", "postalPlace": "Amsterdam", "countryCode": "NL"},
					},
				},
			}, nil)
		f.carts.EXPECT().RestoreCart(gomock.Any(), "session-1", gomock.Any()).Return(nil)
		f.repo.EXPECT().Delete(gomock.Any(), "order-1").Return(nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/checkout/afterpay/pay", gin.H{
			"order_id":       "order-1",
			"payment_method": "afterpay_invoice",
			"session_token":  "session-1",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Check your address.", body["message"])
		address, ok := body["address"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Keizersgracht 1", address["street"])
	})

	t.Run("should answer 422 when no installment plan was selected", func(t *testing.T) {
		f := newHandlerFixture(t)
		ord := storedOrder()
		ord.Customer.IBAN = "NL91ABNA0417164300"
		f.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(ord, nil)
		f.config.EXPECT().Merchant("channel-1").Return(f.merchantConfig(), nil)
		f.gateway.EXPECT().
			Post(gomock.Any(), "https://test.example/api/v3/validate/bank-account", gomock.Any(), gomock.Any()).
			Return(map[string]any{"isValid": true}, nil)
		f.carts.EXPECT().RestoreCart(gomock.Any(), "session-1", gomock.Any()).Return(nil)
		f.repo.EXPECT().Delete(gomock.Any(), "order-1").Return(nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/checkout/afterpay/pay", gin.H{
			"order_id":       "order-1",
			"payment_method": "afterpay_installment",
			"session_token":  "session-1",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["success"])
	})
}

func TestCheckoutHandler_GetInstallments(t *testing.T) {
	newEngine := func(f *handlerFixture) *gin.Engine {
		engine := gin.New()
		handler := NewCheckoutHandler(f.payments, f.sessions, f.config)
		engine.POST("/afterpay/get-installments", handler.GetInstallments)
		return engine
	}

	t.Run("should list plans and echo the stored selection", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.sessions.Set("session-1", payment.SessionKeyInstallmentPlan, "512")
		f.config.EXPECT().Merchant("").Return(f.merchantConfig(), nil)
		f.gateway.EXPECT().
			Post(gomock.Any(), "https://test.example/api/v3/lookup/installment-plans", gomock.Any(), gomock.Any()).
			Return(map[string]any{
				"availableInstallmentPlans": []any{
					map[string]any{"installmentProfileNumber": float64(512), "numberOfInstallments": float64(6)},
				},
			}, nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/afterpay/get-installments", gin.H{
			"session_token": "session-1",
			"country_code":  "NL",
			"currency":      "EUR",
			"amount":        119,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "512", body["selected"])
		plans, ok := body["installments"].([]any)
		require.True(t, ok)
		assert.Len(t, plans, 1)
	})

	t.Run("should answer 400 for unsupported countries", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.config.EXPECT().Merchant("").Return(f.merchantConfig(), nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/afterpay/get-installments", gin.H{
			"session_token": "session-1",
			"country_code":  "FR",
			"currency":      "EUR",
			"amount":        119,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckoutHandler_SavePaymentDetails(t *testing.T) {
	t.Run("should stash selections in the session", func(t *testing.T) {
		f := newHandlerFixture(t)
		engine := gin.New()
		handler := NewCheckoutHandler(f.payments, f.sessions, f.config)
		engine.POST("/afterpay/save-payment-details", handler.SavePaymentDetails)

		rec := doJSON(engine, http.MethodPost, "/afterpay/save-payment-details", gin.H{
			"session_token":    "session-1",
			"installment_plan": "512",
			"iban":             "NL91ABNA0417164300",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		plan, _ := f.sessions.Get("session-1", payment.SessionKeyInstallmentPlan)
		assert.Equal(t, "512", plan)
		iban, _ := f.sessions.Get("session-1", payment.SessionKeyBankAccount)
		assert.Equal(t, "NL91ABNA0417164300", iban)
	})

	t.Run("should drop a stored plan when the customer switches methods", func(t *testing.T) {
		f := newHandlerFixture(t)
		engine := gin.New()
		handler := NewCheckoutHandler(f.payments, f.sessions, f.config)
		engine.POST("/afterpay/save-payment-details", handler.SavePaymentDetails)
		f.sessions.Set("session-1", payment.SessionKeyInstallmentPlan, "512")

		rec := doJSON(engine, http.MethodPost, "/afterpay/save-payment-details", gin.H{
			"session_token":  "session-1",
			"payment_method": "afterpay_invoice",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		_, ok := f.sessions.Get("session-1", payment.SessionKeyInstallmentPlan)
		assert.False(t, ok)
	})
}

func TestCheckoutHandler_ValidateBankAccount(t *testing.T) {
	newEngine := func(f *handlerFixture) *gin.Engine {
		engine := gin.New()
		handler := NewCheckoutHandler(f.payments, f.sessions, f.config)
		engine.POST("/afterpay/validate-bank-account", handler.ValidateBankAccount)
		return engine
	}

	t.Run("should answer 422 when the provider rejects the IBAN", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.config.EXPECT().Merchant("").Return(f.merchantConfig(), nil)
		f.gateway.EXPECT().
			Post(gomock.Any(), "https://test.example/api/v3/validate/bank-account", gomock.Any(), gomock.Any()).
			Return(map[string]any{"isValid": false, "message": "IBAN checksum failed"}, nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/afterpay/validate-bank-account", gin.H{
			"country_code": "NL",
			"iban":         "NL00BANK0000000000",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["message"], "IBAN checksum failed")
	})

	t.Run("should answer 200 for a valid IBAN", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.config.EXPECT().Merchant("").Return(f.merchantConfig(), nil)
		f.gateway.EXPECT().
			Post(gomock.Any(), "https://test.example/api/v3/validate/bank-account", gomock.Any(), gomock.Any()).
			Return(map[string]any{"isValid": true}, nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/afterpay/validate-bank-account", gin.H{
			"country_code": "NL",
			"iban":         "NL91ABNA0417164300",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCheckoutHandler_Tracking(t *testing.T) {
	newEngine := func(f *handlerFixture) *gin.Engine {
		engine := gin.New()
		handler := NewCheckoutHandler(f.payments, f.sessions, f.config)
		engine.GET("/afterpay/tracking", handler.Tracking)
		return engine
	}

	t.Run("should answer 400 without a session token", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := doJSON(newEngine(f), http.MethodGet, "/afterpay/tracking", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should report tracking disabled", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.config.EXPECT().Merchant("").Return(f.merchantConfig(), nil)

		rec := doJSON(newEngine(f), http.MethodGet, "/afterpay/tracking?session_token=session-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["enabled"])
	})

	t.Run("should build the pixel URL when tracking is configured", func(t *testing.T) {
		f := newHandlerFixture(t)
		cfg := f.merchantConfig()
		cfg.ProfileTrackingSetup = "optional"
		cfg.ProfileTrackingID = "profile-1"
		cfg.TrackingScriptURL = "https://track.example/collect"
		f.config.EXPECT().Merchant("").Return(cfg, nil)

		rec := doJSON(newEngine(f), http.MethodGet, "/afterpay/tracking?session_token=session-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["enabled"])
		assert.Equal(t, "https://track.example/collect?s=session-1&t=profile-1", body["url"])
	})
}

func TestAdminHandler_Capture(t *testing.T) {
	newEngine := func(f *handlerFixture) *gin.Engine {
		engine := gin.New()
		handler := NewAdminHandler(f.payments, f.orders)
		engine.POST("/api/_action/afterpay/capture", handler.Capture)
		return engine
	}

	t.Run("should report failure without failing the request", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperror.ErrOrderNotFound)

		rec := doJSON(newEngine(f), http.MethodPost, "/api/_action/afterpay/capture", gin.H{"id": "missing"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["success"])
	})

	t.Run("should capture an authorized order", func(t *testing.T) {
		f := newHandlerFixture(t)
		ord := storedOrder()
		ord.CustomFields = order.CustomFields{
			order.FieldTransactionID:   "ref-16-characters",
			order.FieldTransactionMode: "test",
		}
		f.repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(ord, nil)
		f.config.EXPECT().Merchant("channel-1").Return(f.merchantConfig(), nil)
		f.catalog.EXPECT().GetByID(gomock.Any(), "prod-1").Return(&payment.Product{Number: "SW-100"}, nil)
		f.gateway.EXPECT().
			Post(gomock.Any(), "https://test.example/api/v3/orders/ref-16-characters/captures", gomock.Any(), gomock.Any()).
			Return(map[string]any{"captureNumber": "CAP-9"}, nil)
		f.repo.EXPECT().SetCustomFields(gomock.Any(), "order-1", gomock.Any()).Return(nil)
		f.transitions.EXPECT().
			Transition(gomock.Any(), payment.EntityOrderTransaction, "tx-1", payment.ActionPaid).
			Return(nil)

		rec := doJSON(newEngine(f), http.MethodPost, "/api/_action/afterpay/capture", gin.H{"id": "order-1"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	})
}
