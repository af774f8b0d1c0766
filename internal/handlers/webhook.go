package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/sena-h/group-companion/internal/errors"
	"github.com/sena-h/group-companion/internal/services"
)

// WebhookHandler receives LINE platform webhook batches.
type WebhookHandler struct {
	lineService *services.LineService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(lineService *services.LineService) *WebhookHandler {
	return &WebhookHandler{
		lineService: lineService,
	}
}

// Handle processes a webhook batch. Replies are best-effort; the platform
// always gets a 200 for a parseable body so it does not retry.
func (h *WebhookHandler) Handle(c *gin.Context) {
	type WebhookRequest struct {
		Events []services.WebhookEvent `json:"events"`
	}

	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid webhook body")
		return
	}

	h.lineService.HandleEvents(c.Request.Context(), req.Events)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
