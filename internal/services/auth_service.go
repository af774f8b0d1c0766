package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sena-h/group-companion/internal/constants"
	"github.com/sena-h/group-companion/internal/models"
	"github.com/sena-h/group-companion/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAdminNotFound      = errors.New("admin not found")
)

// AuthService handles admin authentication and bearer tokens.
type AuthService struct {
	adminRepo repository.AdminRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repository.AdminRepository, jwtSecret string) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  constants.AdminTokenTTL,
	}
}

// LoginInput holds the credentials for admin authentication.
type LoginInput struct {
	Username string
	Password string
}

// AdminClaims is the verified content of an admin bearer token.
type AdminClaims struct {
	AdminID  uint64
	Username string
}

// Login verifies credentials and returns the admin with a signed bearer token.
func (s *AuthService) Login(input LoginInput) (*models.Admin, string, error) {
	admin, err := s.adminRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(admin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return admin, token, nil
}

// VerifyToken validates a bearer token and returns its claims. Verification
// is pure crypto; the store is not touched.
func (s *AuthService) VerifyToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	adminID, ok := claims["adminId"].(float64)
	if !ok || adminID <= 0 {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &AdminClaims{
		AdminID:  uint64(adminID),
		Username: username,
	}, nil
}

// GetAdmin retrieves an admin by ID.
func (s *AuthService) GetAdmin(id uint64) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return admin, nil
}

func (s *AuthService) issueToken(admin *models.Admin) (string, error) {
	// Tokens carry an expiry claim; the unbounded tokens of earlier
	// deployments are no longer accepted.
	claims := jwt.MapClaims{
		"adminId":  admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
