package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	// ErrSeedImmutable covers any integer review id; seed entries can never be
	// deleted through normal flows.
	ErrSeedImmutable = errors.New("built-in reviews cannot be deleted")
	ErrDeleteRefused = errors.New("not authorized to delete this review")
	ErrInvalidReview = errors.New("rating must be 1-5, text and both photos are required")
)

// ReviewService handles the review board: reviews go live immediately on
// create, listing appends the built-in seed set after persisted entries, and
// deletion follows a dual ownership-or-password rule.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create stores the review as-is; there is no moderation queue. actingUserID
// may be uuid.Nil for anonymous submissions, which rely on the password for
// later deletion.
func (s *ReviewService) Create(ctx context.Context, req *dto.CreateReviewRequest, actingUserID uuid.UUID) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 || req.Text == "" ||
		req.BeforeImage == "" || req.AfterImage == "" {
		return nil, ErrInvalidReview
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = "익명"
	}

	review := models.Review{
		ID:             uuid.New(),
		UserNickname:   nickname,
		Rating:         req.Rating,
		Text:           req.Text,
		BeforeImageURL: req.BeforeImage,
		AfterImageURL:  req.AfterImage,
		Password:       req.Password,
	}
	if actingUserID != uuid.Nil {
		id := actingUserID
		review.UserID = &id
	}

	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// List returns persisted reviews newest first, with the seed set appended
// after them so real submissions always rank above the demo entries.
func (s *ReviewService) List(ctx context.Context) ([]dto.ReviewResponse, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	result := make([]dto.ReviewResponse, 0, len(reviews)+len(seedReviews))
	for i := range reviews {
		result = append(result, toReviewResponse(&reviews[i]))
	}
	result = append(result, seedReviews...)
	return result, nil
}

// Delete applies the authorization rule:
//
//   - an integer id always refuses (seed entries are immutable);
//   - when the acting user matches the stored owner, deletion proceeds
//     regardless of password;
//   - otherwise the supplied password must equal the stored one exactly;
//   - a review with neither owner match nor password match refuses.
func (s *ReviewService) Delete(ctx context.Context, id string, password string, actingUserID uuid.UUID) error {
	if _, err := strconv.Atoi(id); err == nil {
		return ErrSeedImmutable
	}

	reviewID, err := uuid.Parse(id)
	if err != nil {
		return ErrReviewNotFound
	}

	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to load review: %w", err)
	}

	authorized := false
	if actingUserID != uuid.Nil && review.UserID != nil && *review.UserID == actingUserID {
		authorized = true
	} else if review.Password != "" && password == review.Password {
		authorized = true
	}
	if !authorized {
		return ErrDeleteRefused
	}

	return s.db.WithContext(ctx).Delete(&review).Error
}

// Wipe deletes every persisted review. The compiled-in seed set is untouched
// by definition. Reachable only through the admin-token route.
func (s *ReviewService) Wipe(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Review{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to wipe reviews: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func toReviewResponse(r *models.Review) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		ID:          r.ID.String(),
		User:        r.UserNickname,
		Rating:      r.Rating,
		Text:        r.Text,
		BeforeImage: r.BeforeImageURL,
		AfterImage:  r.AfterImageURL,
		Date:        r.CreatedAt.Format("2006.01.02"),
	}
	if r.UserID != nil {
		resp.UserID = r.UserID.String()
	}
	return resp
}
