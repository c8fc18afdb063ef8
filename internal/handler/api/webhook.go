package api

import (
	"log/slog"
	"net/http"

	"fitbook/internal/handler/httperr"
	"fitbook/internal/pkg/errs"
	"fitbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader     = "Stripe-Signature"
	maxWebhookBodyBytes = 65536
)

type WebhookHandler struct {
	reconciler commands.PaymentReconciler
}

func NewWebhookHandler(reconciler commands.PaymentReconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

// @Summary Payment gateway webhook
// @Description Receive a signed payment notification. Duplicates and unknown events are acknowledged.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Gateway signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/payments [post]
func (h *WebhookHandler) Payments(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	err = h.reconciler.HandleGatewayEvent(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	switch errs.Category(err) {
	case errs.ErrAuth, errs.ErrValidation:
		slog.Warn("Rejected payment notification", "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment notification", nil)
	default:
		// non-2xx makes the gateway redeliver
		slog.Error("Payment notification not processed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
