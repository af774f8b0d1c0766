package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sena-h/group-companion/internal/dto"
	apierrors "github.com/sena-h/group-companion/internal/errors"
	"github.com/sena-h/group-companion/internal/services"
)

// GroupHandler coordinates group and member HTTP handlers.
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroup registers (or returns) the group for a LINE chat.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	type CreateGroupRequest struct {
		ChannelID   uint64 `json:"channelId" binding:"required"`
		LineGroupID string `json:"lineGroupId" binding:"required"`
		Name        string `json:"name"`
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	group, err := h.groupService.EnsureGroup(services.EnsureGroupInput{
		ChannelID:   req.ChannelID,
		LineGroupID: req.LineGroupID,
		Name:        req.Name,
	})
	if err != nil {
		if errors.Is(err, services.ErrChannelNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupDTO(*group))
}

// GetUserPoints returns a member's point balance.
func (h *GroupHandler) GetUserPoints(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	points, err := h.groupService.GetUserPoints(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

// GetUserByLineID looks up a member by LINE user ID within a group. An
// unknown member yields a null body, matching the frontend contract.
func (h *GroupHandler) GetUserByLineID(c *gin.Context) {
	lineUserID := c.Query("lineUserId")
	groupIDStr := c.Query("groupId")
	if lineUserID == "" || groupIDStr == "" {
		apierrors.BadRequest(c, "lineUserId and groupId are required")
		return
	}

	groupID, err := strconv.ParseUint(groupIDStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid groupId")
		return
	}

	user, err := h.groupService.FindUserByLineID(lineUserID, groupID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
