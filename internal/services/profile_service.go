package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInsufficientCredits = errors.New("insufficient credits")

// ProfileService reads and mutates profile rows. It also implements the
// credit store side of credits.Ledger.
type ProfileService struct {
	db          *gorm.DB
	adminEmails map[string]bool
}

func NewProfileService(db *gorm.DB, cfg *config.Config) *ProfileService {
	admins := make(map[string]bool)
	for _, e := range strings.Split(cfg.AdminEmails, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = true
		}
	}
	return &ProfileService{db: db, adminEmails: admins}
}

// Fetch returns the profile row for userID. When the row is missing it is
// provisioned on the spot with zero credits, the admin flag derived from the
// allow-list, and a nickname derived from the email. Fetch never fails just
// because a user authenticated before their profile row existed.
func (s *ProfileService) Fetch(ctx context.Context, userID uuid.UUID, email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	profile = models.Profile{
		ID:       userID,
		Nickname: nicknameFromEmail(email),
		Email:    email,
		Credits:  0,
		IsAdmin:  s.adminEmails[email],
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		// Lost a provisioning race; the row exists now.
		if err2 := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err2 == nil {
			return &profile, nil
		}
		return nil, fmt.Errorf("failed to provision profile: %w", err)
	}
	slog.Info("provisioned profile", "user_id", userID.String(), "is_admin", profile.IsAdmin)
	return &profile, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, name, nickname string) (*models.Profile, error) {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if nickname != "" {
		updates["nickname"] = nickname
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.Profile{}).
			Where("id = ?", userID).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &profile, nil
}

// DeductCreditsAtomic subtracts amount in one conditional statement; it fails
// when the stored balance is lower than amount, so the balance can never go
// negative server-side.
func (s *ProfileService) DeductCreditsAtomic(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	res := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ? AND credits >= ?", userID, amount).
		Update("credits", gorm.Expr("credits - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

// UpdateCredits writes an absolute balance. It is the ledger's fallback path
// and the admin correction tool; it performs no read-modify-write guard.
func (s *ProfileService) UpdateCredits(ctx context.Context, userID uuid.UUID, balance int) error {
	if balance < 0 {
		balance = 0
	}
	res := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("credits", balance)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GrantCredits adds amount relative to the stored balance.
func (s *ProfileService) GrantCredits(ctx context.Context, userID uuid.UUID, amount int) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	res := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("credits", gorm.Expr("credits + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func nicknameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return "사용자"
}
