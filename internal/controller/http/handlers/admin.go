package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/internal/domain/payment"
)

// AdminHandler serves the merchant-facing administration API.
type AdminHandler struct {
	payments *payment.Service
	orders   *order.Service
}

func NewAdminHandler(payments *payment.Service, orders *order.Service) AdminHandler {
	return AdminHandler{payments: payments, orders: orders}
}

type CaptureRequest struct {
	ID string `json:"id" binding:"required"`
}

// Capture triggers a capture for one order outside the sweep. The response
// only carries a success flag; details go to the log.
func (h *AdminHandler) Capture(c *gin.Context) {
	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	ord, err := h.orders.Get(c, req.ID)
	if err != nil {
		slog.ErrorContext(c, "manual capture: load order", "order_id", req.ID, "error", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	if err := h.payments.Capture(c, ord); err != nil {
		slog.ErrorContext(c, "manual capture failed", "order_id", req.ID, "error", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
