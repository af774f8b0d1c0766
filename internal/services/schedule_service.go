package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"github.com/sena-h/group-companion/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound = errors.New("schedule template not found")
	ErrInvalidTimeSlot  = errors.New("time slot must be in HH:MM format")
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")
)

// eventDuration is the fixed length of every exported calendar event.
const eventDuration = time.Hour

// ScheduleService handles schedule templates and calendar exports.
type ScheduleService struct {
	templateRepo repository.ScheduleTemplateRepository
	groupRepo    repository.GroupRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(templateRepo repository.ScheduleTemplateRepository, groupRepo repository.GroupRepository) *ScheduleService {
	return &ScheduleService{
		templateRepo: templateRepo,
		groupRepo:    groupRepo,
	}
}

// CreateTemplateInput represents input for creating a template.
type CreateTemplateInput struct {
	GroupID     uint64
	Title       string
	Description string
	DayOfWeek   int
	TimeSlot    string
}

// ListTemplates returns a group's templates ordered by day and slot.
func (s *ScheduleService) ListTemplates(groupID uint64) ([]models.ScheduleTemplate, error) {
	templates, err := s.templateRepo.ListByGroup(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// CreateTemplate validates and stores a weekly schedule template.
func (s *ScheduleService) CreateTemplate(input CreateTemplateInput) (*models.ScheduleTemplate, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}
	if _, _, err := utils.ParseTimeSlot(input.TimeSlot); err != nil {
		return nil, ErrInvalidTimeSlot
	}

	if _, err := s.groupRepo.FindByID(input.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	template := &models.ScheduleTemplate{
		GroupID:     input.GroupID,
		Title:       input.Title,
		Description: input.Description,
		DayOfWeek:   input.DayOfWeek,
		TimeSlot:    input.TimeSlot,
	}

	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return template, nil
}

// CalendarExport is a rendered iCalendar document with its download filename.
type CalendarExport struct {
	Content  string
	Filename string
}

// ExportCalendar renders a one-hour event for the template at the given
// date's occurrence of its time slot. targetDate defaults to now upstream.
func (s *ScheduleService) ExportCalendar(templateID uint64, targetDate time.Time) (*CalendarExport, error) {
	template, err := s.templateRepo.FindByID(templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	hour, minute, err := utils.ParseTimeSlot(template.TimeSlot)
	if err != nil {
		return nil, ErrInvalidTimeSlot
	}

	day := targetDate.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	now := time.Now()

	content := utils.BuildICS(utils.ICSEvent{
		UID:         fmt.Sprintf("%d-%d@group-companion", template.ID, now.UnixMilli()),
		Stamp:       now,
		Start:       start,
		End:         start.Add(eventDuration),
		Summary:     template.Title,
		Description: template.Description,
	})

	return &CalendarExport{
		Content:  content,
		Filename: utils.SanitizeFilename(template.Title) + ".ics",
	}, nil
}
