package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"AfterpayEngine/internal/controller/apperror"
	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/internal/domain/payment"
)

type PaymentHandler struct {
	payments *payment.Service
	orders   *order.Service
}

func NewPaymentHandler(payments *payment.Service, orders *order.Service) PaymentHandler {
	return PaymentHandler{payments: payments, orders: orders}
}

type PayRequest struct {
	OrderID       string `json:"order_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	SessionToken  string `json:"session_token" binding:"required"`
	TosConsent    bool   `json:"afterpay_tos"`
}

// Pay authorizes a placed order. A provider rejection rolls the order back
// and answers 422 with the customer-facing message, so the storefront can
// send the customer back to checkout.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ord, err := h.orders.Get(c, req.OrderID)
	if err != nil {
		if errors.Is(err, apperror.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	data := payment.AuthorizeData{
		Method:          method,
		SessionToken:    req.SessionToken,
		ClientIP:        c.ClientIP(),
		TrackingConsent: req.TosConsent,
	}
	if err := h.payments.Authorize(c, ord, data); err != nil {
		var rejection *payment.RejectionError
		switch {
		case errors.As(err, &rejection):
			body := gin.H{"success": false, "message": rejection.Message}
			if rejection.SuggestedAddress != nil {
				body["address"] = rejection.SuggestedAddress
			} else if rejection.AddressFlagged {
				body["address_flagged"] = true
			}
			c.JSON(http.StatusUnprocessableEntity, body)
		case errors.Is(err, apperror.ErrInstallmentNotSelected),
			errors.Is(err, apperror.ErrInstallmentNotValid),
			errors.Is(err, apperror.ErrBankAccountNotValid),
			errors.Is(err, apperror.ErrPaymentMethodNotAvailable),
			errors.Is(err, apperror.ErrCountryNotSupported):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
