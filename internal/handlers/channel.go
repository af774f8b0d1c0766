package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sena-h/group-companion/internal/constants"
	"github.com/sena-h/group-companion/internal/dto"
	apierrors "github.com/sena-h/group-companion/internal/errors"
	"github.com/sena-h/group-companion/internal/middleware"
	"github.com/sena-h/group-companion/internal/services"
)

// ChannelHandler coordinates channel and access key HTTP handlers.
type ChannelHandler struct {
	channelService *services.ChannelService
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(channelService *services.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
	}
}

// ListChannels returns all channels without credentials. Admin only.
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	channels, err := h.channelService.ListChannels()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelDTOs(channels))
}

// UpdateChannel applies a partial update to a channel. Admin only.
func (h *ChannelHandler) UpdateChannel(c *gin.Context) {
	channelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid channel ID")
		return
	}

	type UpdateChannelRequest struct {
		Name                   *string `json:"name"`
		LineChannelAccessToken *string `json:"lineChannelAccessToken"`
		LineChannelSecret      *string `json:"lineChannelSecret"`
		LiffID                 *string `json:"liffId"`
		IsActive               *bool   `json:"isActive"`
	}

	var req UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	channel, err := h.channelService.UpdateChannel(channelID, services.UpdateChannelInput{
		Name:                   req.Name,
		LineChannelAccessToken: req.LineChannelAccessToken,
		LineChannelSecret:      req.LineChannelSecret,
		LiffID:                 req.LiffID,
		IsActive:               req.IsActive,
	})
	if err != nil {
		if errors.Is(err, services.ErrChannelNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelDTO(*channel))
}

// Register redeems an access key and creates a channel. Self-service,
// no admin credential.
func (h *ChannelHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		AccessKey              string `json:"accessKey" binding:"required"`
		Name                   string `json:"name" binding:"required"`
		LineChannelID          string `json:"lineChannelId" binding:"required"`
		LineChannelAccessToken string `json:"lineChannelAccessToken" binding:"required"`
		LineChannelSecret      string `json:"lineChannelSecret" binding:"required"`
		LiffID                 string `json:"liffId"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	channel, err := h.channelService.Register(services.RegisterChannelInput{
		AccessKey:              req.AccessKey,
		Name:                   req.Name,
		LineChannelID:          req.LineChannelID,
		LineChannelAccessToken: req.LineChannelAccessToken,
		LineChannelSecret:      req.LineChannelSecret,
		LiffID:                 req.LiffID,
	})
	if err != nil {
		if errors.Is(err, services.ErrAccessKeyInvalid) {
			apierrors.Forbidden(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToChannelDTO(*channel))
}

// IssueAccessKey mints a new single-use access key. Admin only.
func (h *ChannelHandler) IssueAccessKey(c *gin.Context) {
	type IssueRequest struct {
		ExpiresInDays int `json:"expiresInDays"`
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.ExpiresInDays == 0 {
		req.ExpiresInDays = constants.DefaultAccessKeyExpiryDays
	}

	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	key, err := h.channelService.IssueAccessKey(adminID, req.ExpiresInDays)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccessKeyDTO(*key))
}

// ListAccessKeys returns all keys with issuer and channel names. Admin only.
func (h *ChannelHandler) ListAccessKeys(c *gin.Context) {
	keys, err := h.channelService.ListAccessKeys()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccessKeyDTOs(keys))
}
