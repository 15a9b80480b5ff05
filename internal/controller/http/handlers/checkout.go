package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"AfterpayEngine/internal/controller/apperror"
	"AfterpayEngine/internal/domain/payment"
	"AfterpayEngine/internal/external/afterpay"
)

// CheckoutHandler serves the storefront AJAX endpoints used while the
// customer is still in checkout.
type CheckoutHandler struct {
	payments *payment.Service
	sessions payment.SessionStore
	config   payment.ConfigProvider
}

func NewCheckoutHandler(payments *payment.Service, sessions payment.SessionStore, config payment.ConfigProvider) CheckoutHandler {
	return CheckoutHandler{payments: payments, sessions: sessions, config: config}
}

type InstallmentsRequest struct {
	SessionToken   string  `json:"session_token" binding:"required"`
	SalesChannelID string  `json:"sales_channel_id"`
	CountryCode    string  `json:"country_code" binding:"required"`
	Currency       string  `json:"currency" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
}

func (h *CheckoutHandler) GetInstallments(c *gin.Context) {
	var req InstallmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	plans, err := h.payments.AvailableInstallments(c, req.SalesChannelID, req.CountryCode, req.Currency, req.Amount)
	if err != nil {
		if errors.Is(err, apperror.ErrCountryNotSupported) || errors.Is(err, apperror.ErrAPIConfigNotValid) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	body := gin.H{"installments": plans}
	if selected, ok := h.sessions.Get(req.SessionToken, payment.SessionKeyInstallmentPlan); ok {
		body["selected"] = selected
	}
	c.JSON(http.StatusOK, body)
}

type SavePaymentDetailsRequest struct {
	SessionToken    string `json:"session_token" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
	InstallmentPlan string `json:"installment_plan"`
	IBAN            string `json:"iban"`
}

// SavePaymentDetails stashes checkout selections in the session so the later
// authorization can pick them up. A stored installment plan only makes sense
// for the installment variant, so switching to another method drops it.
func (h *CheckoutHandler) SavePaymentDetails(c *gin.Context) {
	var req SavePaymentDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if req.PaymentMethod != "" && req.PaymentMethod != string(payment.MethodInstallment) {
		h.sessions.Remove(req.SessionToken, payment.SessionKeyInstallmentPlan)
	}
	if req.InstallmentPlan != "" {
		h.sessions.Set(req.SessionToken, payment.SessionKeyInstallmentPlan, req.InstallmentPlan)
	}
	if req.IBAN != "" {
		h.sessions.Set(req.SessionToken, payment.SessionKeyBankAccount, req.IBAN)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type ValidateBankAccountRequest struct {
	SalesChannelID string `json:"sales_channel_id"`
	CountryCode    string `json:"country_code" binding:"required"`
	IBAN           string `json:"iban" binding:"required"`
}

func (h *CheckoutHandler) ValidateBankAccount(c *gin.Context) {
	var req ValidateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.payments.ValidateBankAccount(c, req.SalesChannelID, req.CountryCode, req.IBAN); err != nil {
		if errors.Is(err, apperror.ErrBankAccountNotValid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Tracking returns the profile tracking pixel URL for the storefront to
// embed, when tracking is configured.
func (h *CheckoutHandler) Tracking(c *gin.Context) {
	sessionToken := c.Query("session_token")
	if sessionToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing session_token"})
		return
	}

	cfg, err := h.config.Merchant(c.Query("sales_channel_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if !cfg.ProfileTrackingEnabled() || cfg.ProfileTrackingID == "" {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	url, err := afterpay.TrackingURL(cfg.TrackingScriptURL, cfg.ProfileTrackingID, sessionToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": true, "url": url})
}
