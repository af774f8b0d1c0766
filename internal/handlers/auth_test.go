package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sena-h/group-companion/internal/database"
	"github.com/sena-h/group-companion/internal/dto"
	"github.com/sena-h/group-companion/internal/middleware"
	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"github.com/sena-h/group-companion/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Admin{})
	require.NoError(t, err)

	database.SetDB(db)

	adminRepo := repository.NewAdminRepository(db)
	authService := services.NewAuthService(adminRepo, testJWTSecret)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Email:        username + "@example.com",
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	seedAdmin(t, env.db, "root", "correct-horse")

	r := gin.New()
	r.POST("/api/admin/login", env.handler.Login)

	payload := map[string]string{
		"username": "root",
		"password": "correct-horse",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, "root", response.Admin.Username)

	claims, err := env.authService.VerifyToken(response.Token)
	require.NoError(t, err)
	require.Equal(t, "root", claims.Username)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	seedAdmin(t, env.db, "root", "correct-horse")

	r := gin.New()
	r.POST("/api/admin/login", env.handler.Login)

	body, err := json.Marshal(map[string]string{
		"username": "root",
		"password": "wrong",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_NoToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.GET("/api/admin/channels", middleware.RequireAdmin(env.authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/channels", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotContains(t, w.Body.String(), "reached")
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"adminId":  float64(1),
		"username": "root",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/admin/channels", middleware.RequireAdmin(env.authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/channels", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_GarbageToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.GET("/api/admin/channels", middleware.RequireAdmin(env.authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/channels", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
