package transport

import (
	"io"
	"net/http"

	"github.com/creativeclicks/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.WorkshopService
}

func NewPaymentHandler(service service.WorkshopService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Status is the client-initiated reconciliation path: it is polled by the
// success page while the checkout result settles.
func (h *PaymentHandler) Status(c *gin.Context) {
	status, err := h.service.GetPaymentStatus(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Webhook receives signed gateway notifications. The body must be read raw;
// signature verification covers the exact bytes on the wire.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
