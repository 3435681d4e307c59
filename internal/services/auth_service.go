package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/mailer"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db          *gorm.DB
	cfg         *config.Config
	mail        *mailer.Mailer
	adminEmails map[string]bool
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mail *mailer.Mailer) *AuthService {
	admins := make(map[string]bool)
	for _, e := range strings.Split(cfg.AdminEmails, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = true
		}
	}
	return &AuthService{db: db, cfg: cfg, mail: mail, adminEmails: admins}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Email) == 0 || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Profile
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = strings.Split(email, "@")[0]
	}

	profile := models.Profile{
		ID:       uuid.New(),
		Name:     req.Name,
		Nickname: nickname,
		Email:    email,
		Password: string(hash),
		Credits:  0,
		IsAdmin:  s.adminEmails[email],
	}

	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return s.generateTokenPair(&profile)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.Profile
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Allow-listed admins keep their flag even if the row predates the list.
	if !profile.IsAdmin && s.adminEmails[email] {
		s.db.Model(&profile).Update("is_admin", true)
		profile.IsAdmin = true
	}

	return s.generateTokenPair(&profile)
}

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

	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(&profile)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// Recover issues a temporary password and mails it to the account address.
// Always reports success to the caller so the endpoint cannot be used to
// probe which emails exist.
func (s *AuthService) Recover(req *dto.RecoverRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return errors.New("email is required")
	}

	var profile models.Profile
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil
	}

	raw := make([]byte, 9)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate temporary password: %w", err)
	}
	tempPassword := base64.RawURLEncoding.EncodeToString(raw)

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&profile).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	if err := s.mail.Send(email, "[PawTrait] 임시 비밀번호 안내",
		"임시 비밀번호: "+tempPassword+"\n로그인 후 비밀번호를 변경해 주세요."); err != nil {
		slog.Error("failed to send recovery email", "error", err)
	}
	return nil
}

// Session looks up the profile behind an access token. It is bounded by the
// auth timeout; when the store does not answer in time the caller proceeds
// logged out rather than blocking the client.
func (s *AuthService) Session(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.AuthTimeout)
	defer cancel()

	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Warn("session lookup timed out, proceeding logged out", "user_id", userID.String())
			return nil, nil
		}
		return nil, ErrUserNotFound
	}

	return &dto.ProfileResponse{
		ID:       profile.ID,
		Name:     profile.Name,
		Nickname: profile.Nickname,
		Email:    profile.Email,
		Credits:  profile.Credits,
		IsAdmin:  profile.IsAdmin,
	}, nil
}

func (s *AuthService) DeleteAccount(userID uuid.UUID, password string) error {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if password == "" {
		return errors.New("password is required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{})
		tx.Where("user_id = ?", userID).Delete(&models.Notification{})
		return tx.Delete(&profile).Error
	})
}

func (s *AuthService) generateTokenPair(profile *models.Profile) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(profile)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.ProfileResponse{
			ID:       profile.ID,
			Name:     profile.Name,
			Nickname: profile.Nickname,
			Email:    profile.Email,
			Credits:  profile.Credits,
			IsAdmin:  profile.IsAdmin,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":      profile.ID.String(),
		"email":    profile.Email,
		"is_admin": profile.IsAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(profile *models.Profile) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	tokenHash := hashToken(rawToken)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    profile.ID,
		TokenHash: tokenHash,
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
