package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"AfterpayEngine/internal/controller/http/handlers"
	"AfterpayEngine/pkg/health"
	"AfterpayEngine/pkg/metrics"
)

type Router struct {
	payment  handlers.PaymentHandler
	checkout handlers.CheckoutHandler
	admin    handlers.AdminHandler
	checks   *health.Registry
}

func NewRouter(
	payment handlers.PaymentHandler,
	checkout handlers.CheckoutHandler,
	admin handlers.AdminHandler,
	checks *health.Registry,
) *Router {
	return &Router{
		payment:  payment,
		checkout: checkout,
		admin:    admin,
		checks:   checks,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.checks))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/checkout/afterpay/pay", r.payment.Pay)

	engine.POST("/afterpay/get-installments", r.checkout.GetInstallments)
	engine.POST("/afterpay/save-payment-details", r.checkout.SavePaymentDetails)
	engine.POST("/afterpay/validate-bank-account", r.checkout.ValidateBankAccount)
	engine.GET("/afterpay/tracking", r.checkout.Tracking)

	engine.POST("/api/_action/afterpay/capture", r.admin.Capture)
}
