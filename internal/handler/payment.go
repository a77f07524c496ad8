package handler

import (
	"log/slog"
	"net/http"

	"building/internal/model"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment intents and payment history
type PaymentHandler struct {
	payments PaymentService
	log      *slog.Logger
}

func NewPaymentHandler(payments PaymentService, log *slog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, log: log}
}

// CreateIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req model.PaymentIntentRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.payments.CreateIntent(c.Request.Context(), req.Rent)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Record handles POST /payments
func (h *PaymentHandler) Record(c *gin.Context) {
	var payment model.Payment
	if !bindJSON(c, &payment) {
		return
	}
	res, err := h.payments.Record(c.Request.Context(), &payment)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// History handles GET /payments/:email
func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.payments.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
