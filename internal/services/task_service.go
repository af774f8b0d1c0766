package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTitleRequired        = errors.New("title is required")
	ErrTaskNotPending       = errors.New("task has already been executed")
	ErrTaskNotExecuted      = errors.New("task not executed yet")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
)

// TaskService handles the task lifecycle: create, execute, thank.
type TaskService struct {
	taskRepo  repository.TaskRepository
	groupRepo repository.GroupRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, groupRepo repository.GroupRepository) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		groupRepo: groupRepo,
	}
}

// ActorInput identifies the acting group member. The user row is created
// on first sight with the supplied display name.
type ActorInput struct {
	LineUserID  string
	DisplayName string
	GroupID     uint64
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	GroupID     uint64
	Title       string
	Description string
	LineUserID  string
	DisplayName string
}

// ListTasks returns a group's tasks, newest first, with people preloaded.
func (s *TaskService) ListTasks(groupID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a pending task, upserting the acting user.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	if _, err := s.groupRepo.FindByID(input.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	user, err := s.ensureUser(ActorInput{
		LineUserID:  input.LineUserID,
		DisplayName: input.DisplayName,
		GroupID:     input.GroupID,
	})
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		GroupID:       input.GroupID,
		Title:         input.Title,
		Description:   input.Description,
		CreatorUserID: user.ID,
		Status:        models.TaskStatusPending,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Creator")
}

// ExecuteTask records the acting user as executor and moves the task to
// in_progress. Only a pending task can be executed; re-execution is
// rejected rather than silently overwriting the executor.
func (s *TaskService) ExecuteTask(taskID uint64, actor ActorInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Status != models.TaskStatusPending {
		return nil, ErrTaskNotPending
	}

	user, err := s.ensureUser(actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task.ExecutorUserID = &user.ID
	task.ExecutedAt = &now
	task.Status = models.TaskStatusInProgress

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to execute task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Creator", "Executor")
}

// ThankTask completes the task and awards the executor one point. Requires
// an executor to be set; a completed task cannot be thanked again, so the
// point is awarded at most once.
func (s *TaskService) ThankTask(taskID uint64, actor ActorInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.ExecutorUserID == nil {
		return nil, ErrTaskNotExecuted
	}
	if task.Status == models.TaskStatusCompleted {
		return nil, ErrTaskAlreadyCompleted
	}

	user, err := s.ensureUser(actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task.ThankedUserID = &user.ID
	task.ThankedAt = &now
	task.Status = models.TaskStatusCompleted

	if err := s.taskRepo.CompleteWithReward(task, *task.ExecutorUserID); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Creator", "Executor", "Thanked")
}

func (s *TaskService) ensureUser(actor ActorInput) (*models.User, error) {
	user, err := s.groupRepo.FindOrCreateUser(&models.User{
		LineUserID:  actor.LineUserID,
		DisplayName: actor.DisplayName,
		GroupID:     actor.GroupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}
	return user, nil
}
