package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Ambaks/campuseats/pkg/logger"
	"github.com/Ambaks/campuseats/pkg/resp"
	"github.com/Ambaks/campuseats/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

type PaymentController struct {
	Gateway services.PaymentGateway
	Svc     *services.CheckoutService
}

func NewPaymentController(gateway services.PaymentGateway, svc *services.CheckoutService) *PaymentController {
	return &PaymentController{Gateway: gateway, Svc: svc}
}

// POST /checkout-session
func (ctl *PaymentController) CreateCheckoutSession(c *gin.Context) {
	var req services.CreateSessionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.CreateSession(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /webhook/payment: the provider's asynchronous callback. Signature
// verification is a security boundary: a bad signature is rejected before
// any payload inspection.
func (ctl *PaymentController) Webhook(c *gin.Context) {
	event, err := ctl.Gateway.ParseWebhook(c.Request)
	if err != nil {
		logger.L().Warn("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid signature"})
		return
	}

	if event.Type != "checkout.session.completed" {
		// Acknowledged, ignored.
		resp.OK(c, gin.H{"status": "ignored"})
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		logger.L().Error("failed to unmarshal checkout session", zap.Error(err))
		resp.BadRequest(c, "invalid payload")
		return
	}

	if err := ctl.Svc.HandleCompletedSession(sess.Metadata); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "success"})
}
