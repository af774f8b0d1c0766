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

// TaskHandler coordinates task lifecycle HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// actorRequest is shared by the execute and thank transitions.
type actorRequest struct {
	LineUserID  string `json:"lineUserId" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	GroupID     uint64 `json:"groupId" binding:"required"`
}

// ListTasks returns a group's tasks, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
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

	tasks, err := h.taskService.ListTasks(groupID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a pending task for the acting member.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		GroupID     uint64 `json:"groupId" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		LineUserID  string `json:"lineUserId" binding:"required"`
		DisplayName string `json:"displayName" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		GroupID:     req.GroupID,
		Title:       req.Title,
		Description: req.Description,
		LineUserID:  req.LineUserID,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ExecuteTask moves a pending task to in_progress with the acting member
// as executor.
func (h *TaskHandler) ExecuteTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.ExecuteTask(taskID, services.ActorInput{
		LineUserID:  req.LineUserID,
		DisplayName: req.DisplayName,
		GroupID:     req.GroupID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ThankTask completes a task and awards the executor a point.
func (h *TaskHandler) ThankTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	var req actorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.ThankTask(taskID, services.ActorInput{
		LineUserID:  req.LineUserID,
		DisplayName: req.DisplayName,
		GroupID:     req.GroupID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskNotExecuted):
		apierrors.PreconditionFailed(c, err.Error())
	case errors.Is(err, services.ErrTaskNotPending),
		errors.Is(err, services.ErrTaskAlreadyCompleted):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
