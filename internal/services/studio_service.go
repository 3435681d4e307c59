package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/thewiseshop/pawtrait-backend/internal/catalog"
	"github.com/thewiseshop/pawtrait-backend/internal/credits"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/genimage"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUnknownStyle       = errors.New("unknown art style")
	ErrMissingSourceImage = errors.New("source image is required")
)

const maxImagesPerRequest = 4

// StudioService runs the generation pipeline: resolve the style, check and
// deduct credits through the ledger, then call the image generator. One
// credit buys one image. The deduction happens before the generation call
// and is not refunded when generation fails.
type StudioService struct {
	db        *gorm.DB
	catalog   *catalog.Registry
	profiles  *ProfileService
	generator genimage.Generator
}

func NewStudioService(db *gorm.DB, reg *catalog.Registry, profiles *ProfileService, gen genimage.Generator) *StudioService {
	return &StudioService{db: db, catalog: reg, profiles: profiles, generator: gen}
}

func (s *StudioService) Generate(ctx context.Context, userID uuid.UUID, email string, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if req.ImageBase64 == "" {
		return nil, ErrMissingSourceImage
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > maxImagesPerRequest {
		count = maxImagesPerRequest
	}

	styleName := "Custom Reference"
	prompt := "Transform this pet photo to match the artistic style of the reference image. Keep the pet's identity and pose."
	if req.ReferenceImage == "" {
		style := s.catalog.Style(req.StyleID)
		if style == nil {
			return nil, ErrUnknownStyle
		}
		styleName = style.Name
		prompt = catalog.EnhancedPrompt(style.ID)
	}

	profile, err := s.profiles.Fetch(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	if profile.Credits < count {
		return nil, ErrInsufficientCredits
	}

	ledger := credits.NewLedger(s.profiles, userID, profile.Credits)
	if err := ledger.Deduct(ctx, count); err != nil {
		return nil, err
	}

	aspect := req.AspectRatio
	if aspect != "16:9" {
		aspect = "9:16"
	}

	images, err := s.generator.Generate(ctx, genimage.Request{
		ImageData:     req.ImageBase64,
		ImageMime:     req.ImageMimeType,
		ReferenceData: req.ReferenceImage,
		Prompt:        prompt,
		AspectRatio:   aspect,
		Count:         count,
	})
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.DataURL())
	}

	if s.db != nil {
		s.db.WithContext(ctx).Create(&models.Notification{
			UserID:  userID,
			Title:   "이미지 생성 완료",
			Message: fmt.Sprintf("%s 스타일 이미지 %d장이 생성되었습니다.", styleName, len(urls)),
			Type:    models.NotificationTypeGenerate,
		})
	}

	return &dto.GenerateResponse{
		Images:    urls,
		StyleID:   req.StyleID,
		StyleName: styleName,
		Credits:   ledger.Balance(),
	}, nil
}
