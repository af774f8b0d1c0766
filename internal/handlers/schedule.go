package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sena-h/group-companion/internal/dto"
	apierrors "github.com/sena-h/group-companion/internal/errors"
	"github.com/sena-h/group-companion/internal/services"
)

// ScheduleHandler coordinates schedule template HTTP handlers.
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// ListTemplates returns a group's templates ordered by day and slot.
func (h *ScheduleHandler) ListTemplates(c *gin.Context) {
	groupIDStr := c.Query("groupId")
	if groupIDStr == "" {
		apierrors.BadRequest(c, "groupId is required")
		return
	}
	groupID, err := strconv.ParseUint(groupIDStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid groupId")
		return
	}

	templates, err := h.scheduleService.ListTemplates(groupID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleTemplateDTOs(templates))
}

// CreateTemplate stores a weekly schedule template.
func (h *ScheduleHandler) CreateTemplate(c *gin.Context) {
	type CreateTemplateRequest struct {
		GroupID     uint64 `json:"groupId" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		DayOfWeek   *int   `json:"dayOfWeek" binding:"required"`
		TimeSlot    string `json:"timeSlot" binding:"required"`
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.scheduleService.CreateTemplate(services.CreateTemplateInput{
		GroupID:     req.GroupID,
		Title:       req.Title,
		Description: req.Description,
		DayOfWeek:   *req.DayOfWeek,
		TimeSlot:    req.TimeSlot,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGroupNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrInvalidTimeSlot),
			errors.Is(err, services.ErrInvalidDayOfWeek):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduleTemplateDTO(*template))
}

// ExportCalendar renders a template occurrence as a text/calendar download.
// The optional date query (YYYY-MM-DD) defaults to today.
func (h *ScheduleHandler) ExportCalendar(c *gin.Context) {
	templateID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid template ID")
		return
	}

	targetDate := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		targetDate, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			apierrors.BadRequest(c, "date must be in YYYY-MM-DD format")
			return
		}
	}

	export, err := h.scheduleService.ExportCalendar(templateID, targetDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidTimeSlot):
			apierrors.InternalError(c, "stored time slot is malformed")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(export.Content))
}
