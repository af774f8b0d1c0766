package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sena-h/group-companion/internal/database"
	"github.com/sena-h/group-companion/internal/dto"
	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"github.com/sena-h/group-companion/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type scheduleTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	group  *models.Group
}

func setupScheduleTestEnv(t *testing.T) scheduleTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Channel{},
		&models.Group{},
		&models.ScheduleTemplate{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	group := &models.Group{ChannelID: 1, LineGroupID: "line-group-1", Name: "Test Group"}
	require.NoError(t, db.Create(group).Error)

	groupRepo := repository.NewGroupRepository(db)
	templateRepo := repository.NewScheduleTemplateRepository(db)
	scheduleService := services.NewScheduleService(templateRepo, groupRepo)
	handler := NewScheduleHandler(scheduleService)

	r := gin.New()
	r.GET("/api/schedule-templates", handler.ListTemplates)
	r.POST("/api/schedule-templates", handler.CreateTemplate)
	r.GET("/api/schedule-templates/:id/ics", handler.ExportCalendar)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return scheduleTestEnv{db: db, router: r, group: group}
}

func (env scheduleTestEnv) createTemplate(t *testing.T, title, timeSlot string, dayOfWeek int) dto.ScheduleTemplateDTO {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"groupId":     env.group.ID,
		"title":       title,
		"description": "weekly slot",
		"dayOfWeek":   dayOfWeek,
		"timeSlot":    timeSlot,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/schedule-templates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var template dto.ScheduleTemplateDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &template))
	return template
}

func TestScheduleHandler_CreateTemplate_InvalidTimeSlot(t *testing.T) {
	env := setupScheduleTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{
		"groupId":   env.group.ID,
		"title":     "Cleanup",
		"dayOfWeek": 2,
		"timeSlot":  "late evening",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/schedule-templates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandler_ExportCalendar(t *testing.T) {
	env := setupScheduleTestEnv(t)
	template := env.createTemplate(t, "Weekly Cleanup", "09:30", 5)

	url := fmt.Sprintf("/api/schedule-templates/%d/ics?date=2024-03-01", template.ID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	require.Contains(t, w.Header().Get("Content-Disposition"), "Weekly_Cleanup.ics")

	ics := w.Body.String()
	require.Contains(t, ics, "BEGIN:VCALENDAR")
	require.Contains(t, ics, "DTSTART:20240301T093000Z")
	require.Contains(t, ics, "DTEND:20240301T103000Z")
	require.Contains(t, ics, "SUMMARY:Weekly Cleanup")
}

func TestScheduleHandler_ExportCalendar_EscapesText(t *testing.T) {
	env := setupScheduleTestEnv(t)
	template := env.createTemplate(t, "Trash; plastic, cans", "07:00", 1)

	url := fmt.Sprintf("/api/schedule-templates/%d/ics?date=2024-03-01", template.ID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "SUMMARY:Trash\\; plastic\\, cans")
}

func TestScheduleHandler_ExportCalendar_NotFound(t *testing.T) {
	env := setupScheduleTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule-templates/9999/ics", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduleHandler_ListTemplates(t *testing.T) {
	env := setupScheduleTestEnv(t)
	env.createTemplate(t, "Evening", "19:00", 3)
	env.createTemplate(t, "Morning", "07:00", 1)

	url := fmt.Sprintf("/api/schedule-templates?groupId=%d", env.group.ID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var templates []dto.ScheduleTemplateDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &templates))
	require.Len(t, templates, 2)
	// Ordered by day of week, then slot.
	require.Equal(t, "Morning", templates[0].Title)
}
