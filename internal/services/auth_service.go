package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/recruitsss/recruitsss-backend/internal/config"
	"github.com/recruitsss/recruitsss-backend/internal/dto"
	"github.com/recruitsss/recruitsss-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrAccountInactive    = errors.New("account is not active")
)

type AuthService struct {
	db            *gorm.DB
	cfg           *config.Config
	notifications *NotificationService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, notifications *NotificationService) *AuthService {
	return &AuthService{db: db, cfg: cfg, notifications: notifications}
}

// Register creates the user and its role profile in one transaction.
// Self-registration is limited to candidates and recruiters.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return nil, errors.New("email, first_name and last_name are required")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if req.Password != req.PasswordConfirm {
		return nil, errors.New("password fields didn't match")
	}
	if req.Role != models.RoleCandidate && req.Role != models.RoleRecruiter {
		return nil, errors.New("role must be CANDIDATE or RECRUITER")
	}
	if req.Role == models.RoleRecruiter && req.CompanyName == "" {
		return nil, errors.New("company_name is required for recruiters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		Status:    models.UserStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		switch req.Role {
		case models.RoleCandidate:
			profile := models.Candidate{
				ID:              user.ID,
				Bio:             req.Bio,
				Skills:          pq.StringArray(req.Skills),
				ExperienceYears: req.ExperienceYears,
				Location:        req.Location,
				IsAvailable:     true,
			}
			profile.CalculateProfileCompleteness()
			return tx.Create(&profile).Error
		case models.RoleRecruiter:
			profile := models.Recruiter{
				ID:                 user.ID,
				CompanyName:        req.CompanyName,
				CompanyDescription: req.CompanyDescription,
				Industry:           req.Industry,
				PaymentStatus:      models.PaymentStatusPending,
			}
			return tx.Create(&profile).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifications.NotifyAccountCreated(&user)

	tokens, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: &user, Tokens: *tokens, Message: "User registered successfully"}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login_at", now)
	user.LastLoginAt = &now

	tokens, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: &user, Tokens: *tokens, Message: "Login successful"}, nil
}

// Refresh rotates the refresh token: the presented token is revoked and a
// fresh pair is issued.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if !user.IsActive() {
		return nil, ErrAccountInactive
	}

	tokens, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: &user, Tokens: *tokens, Message: "Token refreshed"}, nil
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.TokenPair, error) {
	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
