package repository

import (
	"github.com/sena-h/group-companion/internal/models"
	"gorm.io/gorm"
)

// GormScheduleTemplateRepository is a GORM implementation of ScheduleTemplateRepository
type GormScheduleTemplateRepository struct {
	db *gorm.DB
}

// NewScheduleTemplateRepository creates a new ScheduleTemplateRepository
func NewScheduleTemplateRepository(db *gorm.DB) ScheduleTemplateRepository {
	return &GormScheduleTemplateRepository{db: db}
}

// Create creates a new template
func (r *GormScheduleTemplateRepository) Create(template *models.ScheduleTemplate) error {
	return r.db.Create(template).Error
}

// FindByID finds a template by ID
func (r *GormScheduleTemplateRepository) FindByID(id uint64) (*models.ScheduleTemplate, error) {
	var template models.ScheduleTemplate
	if err := r.db.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// ListByGroup lists a group's templates ordered by day and slot
func (r *GormScheduleTemplateRepository) ListByGroup(groupID uint64) ([]models.ScheduleTemplate, error) {
	var templates []models.ScheduleTemplate
	err := r.db.
		Where("group_id = ?", groupID).
		Order("day_of_week, time_slot").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}
