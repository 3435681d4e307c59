package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/thewiseshop/pawtrait-backend/internal/catalog"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/mailer"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUnknownPackage  = errors.New("unknown credit package")
	ErrRequestNotFound = errors.New("payment request not found")
	// ErrAlreadyDecided means the request left PENDING before this decision
	// landed. The caller gets a conflict, never a second credit grant.
	ErrAlreadyDecided = errors.New("payment request already decided")
)

// PaymentService handles the bank-transfer top-up workflow: users submit a
// request for a package, an admin approves or rejects it. Approval grants the
// package credits exactly once.
type PaymentService struct {
	db      *gorm.DB
	catalog *catalog.Registry
	mail    *mailer.Mailer
}

func NewPaymentService(db *gorm.DB, reg *catalog.Registry, mail *mailer.Mailer) *PaymentService {
	return &PaymentService{db: db, catalog: reg, mail: mail}
}

// Create records a pending request with a snapshot of the requester's display
// fields taken now. Later profile edits do not rewrite request history.
func (s *PaymentService) Create(ctx context.Context, profile *models.Profile, packageID string) (*models.PaymentRequest, error) {
	pkg := s.catalog.Package(packageID)
	if pkg == nil {
		return nil, ErrUnknownPackage
	}

	req := models.PaymentRequest{
		ID:           uuid.New(),
		UserID:       profile.ID,
		UserName:     profile.Name,
		UserNickname: profile.Nickname,
		UserEmail:    profile.Email,
		Amount:       pkg.Price,
		Credits:      pkg.Credits,
		PackageName:  pkg.Name,
		Status:       models.PaymentStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(&req).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}
	return &req, nil
}

// ListForUser returns the caller's own requests, newest first.
func (s *PaymentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.PaymentRequest, error) {
	var requests []models.PaymentRequest
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payment requests: %w", err)
	}
	return requests, nil
}

// ListAll returns every request for the admin dashboard, newest first,
// optionally filtered by status.
func (s *PaymentService) ListAll(ctx context.Context, status string) ([]models.PaymentRequest, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.PaymentRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payment requests: %w", err)
	}

	var requests []models.PaymentRequest
	if err := q.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payment requests: %w", err)
	}
	return requests, total, nil
}

// Approve flips the request to APPROVED and grants its credits in one
// transaction. The status flip is conditional on the row still being PENDING;
// when zero rows match, another decision already landed and no credits move.
func (s *PaymentService) Approve(ctx context.Context, requestID uuid.UUID) (*models.PaymentRequest, error) {
	var req models.PaymentRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		res := tx.Model(&models.PaymentRequest{}).
			Where("id = ? AND status = ?", requestID, models.PaymentStatusPending).
			Update("status", models.PaymentStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyDecided
		}

		grant := tx.Model(&models.Profile{}).
			Where("id = ?", req.UserID).
			Update("credits", gorm.Expr("credits + ?", req.Credits))
		if grant.Error != nil {
			return grant.Error
		}
		if grant.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return tx.Create(&models.Notification{
			UserID:  req.UserID,
			Title:   "크레딧 충전 완료",
			Message: fmt.Sprintf("%s 승인: %d 크레딧이 지급되었습니다.", req.PackageName, req.Credits),
			Type:    models.NotificationTypePayment,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	req.Status = models.PaymentStatusApproved
	s.notifyByMail(&req, true)
	return &req, nil
}

// Reject flips the request to REJECTED under the same PENDING guard. No
// credits move on rejection.
func (s *PaymentService) Reject(ctx context.Context, requestID uuid.UUID) (*models.PaymentRequest, error) {
	var req models.PaymentRequest
	if err := s.db.WithContext(ctx).First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.PaymentRequest{}).
		Where("id = ? AND status = ?", requestID, models.PaymentStatusPending).
		Update("status", models.PaymentStatusRejected)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyDecided
	}

	req.Status = models.PaymentStatusRejected
	s.notifyByMail(&req, false)
	return &req, nil
}

// Wipe deletes every payment request. Destructive maintenance operation,
// reachable only through the admin-token route.
func (s *PaymentService) Wipe(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.PaymentRequest{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to wipe payment requests: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *PaymentService) notifyByMail(req *models.PaymentRequest, approved bool) {
	if s.mail == nil || !s.mail.Configured() || req.UserEmail == "" {
		return
	}
	subject := "[PawTrait] 입금 확인 및 크레딧 지급 안내"
	body := fmt.Sprintf("%s 결제가 승인되어 %d 크레딧이 지급되었습니다.", req.PackageName, req.Credits)
	if !approved {
		subject = "[PawTrait] 결제 요청 반려 안내"
		body = fmt.Sprintf("%s 결제 요청이 반려되었습니다. 입금 내역을 확인해 주세요.", req.PackageName)
	}
	if err := s.mail.Send(req.UserEmail, subject, body); err != nil {
		slog.Error("failed to send payment notice", "request_id", req.ID.String(), "error", err)
	}
}

func ToPaymentResponse(req *models.PaymentRequest) dto.PaymentRequestResponse {
	return dto.PaymentRequestResponse{
		ID:           req.ID,
		UserID:       req.UserID,
		UserName:     req.UserName,
		UserNickname: req.UserNickname,
		UserEmail:    req.UserEmail,
		Amount:       req.Amount,
		Credits:      req.Credits,
		PackageName:  req.PackageName,
		Status:       req.Status,
		CreatedAt:    req.CreatedAt,
	}
}
