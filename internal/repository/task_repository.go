package repository

import (
	"errors"
	"fmt"

	"github.com/sena-h/group-companion/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrSaveTask is returned when persisting the task fails inside the thank transaction.
	ErrSaveTask = errors.New("task repository: save task failed")
	// ErrAwardPoint is returned when incrementing the executor's points fails inside the thank transaction.
	ErrAwardPoint = errors.New("task repository: award point failed")
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByGroup lists a group's tasks, newest first, with people preloaded
func (r *GormTaskRepository) ListByGroup(groupID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Preload("Creator").
		Preload("Executor").
		Preload("Thanked").
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// CompleteWithReward saves the thanked task and awards the executor one
// point atomically. The increment is a single UPDATE expression, not a
// read-modify-write.
func (r *GormTaskRepository) CompleteWithReward(task *models.Task, executorUserID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSaveTask, err)
		}

		err := tx.Model(&models.User{}).
			Where("id = ?", executorUserID).
			UpdateColumn("points", gorm.Expr("points + ?", 1)).Error
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAwardPoint, err)
		}

		return nil
	})
}
