package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/thewiseshop/pawtrait-backend/internal/catalog"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/credits"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/genimage"
	"github.com/thewiseshop/pawtrait-backend/internal/middleware"
	"github.com/thewiseshop/pawtrait-backend/internal/services"
)

type StudioHandler struct {
	studio  *services.StudioService
	catalog *catalog.Registry
	cfg     *config.Config
}

func NewStudioHandler(studio *services.StudioService, reg *catalog.Registry, cfg *config.Config) *StudioHandler {
	return &StudioHandler{studio: studio, catalog: reg, cfg: cfg}
}

func (h *StudioHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.studio.Generate(c.Context(), middleware.UserID(c), middleware.UserEmail(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingSourceImage), errors.Is(err, services.ErrUnknownStyle):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInsufficientCredits):
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Error: true, Message: "크레딧이 부족합니다. 충전 후 이용해 주세요.",
			})
		case errors.Is(err, credits.ErrDeductFailed):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "크레딧 차감에 실패했습니다. 다시 시도해 주세요.",
			})
		case errors.Is(err, genimage.ErrContentPolicy):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Error: true, Message: "생성된 이미지가 없습니다. 다른 사진으로 시도해 주세요.",
			})
		case errors.Is(err, genimage.ErrNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "Image generation is not configured",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: true, Message: "이미지 생성에 실패했습니다.",
			})
		}
	}

	return c.JSON(resp)
}

// Catalog is public: the storefront renders styles and packages before login.
func (h *StudioHandler) Catalog(c *fiber.Ctx) error {
	styles := h.catalog.Styles()
	packages := h.catalog.Packages()

	resp := dto.CatalogResponse{
		Styles:   make([]dto.StyleResponse, 0, len(styles)),
		Packages: make([]dto.CreditPackageResponse, 0, len(packages)),
	}
	for _, s := range styles {
		resp.Styles = append(resp.Styles, dto.StyleResponse{
			ID:             s.ID,
			Name:           s.Name,
			Description:    s.Description,
			ThumbnailURL:   s.ThumbnailURL,
			Category:       s.Category,
			RecommendedFor: s.RecommendedFor,
			Tags:           s.Tags,
		})
	}
	for _, p := range packages {
		resp.Packages = append(resp.Packages, dto.CreditPackageResponse{
			ID:      p.ID,
			Name:    p.Name,
			Price:   p.Price,
			Credits: p.Credits,
			Tag:     p.Tag,
		})
	}
	return c.JSON(resp)
}

// ClientConfig hands the storefront its publishable keys and the transfer
// account. Secrets stay server-side.
func (h *StudioHandler) ClientConfig(c *fiber.Ctx) error {
	return c.JSON(dto.ClientConfigResponse{
		TossClientKey:  h.cfg.TossClientKey,
		KakaoClientKey: h.cfg.KakaoClientKey,
		BankName:       h.cfg.BankName,
		BankAccount:    h.cfg.BankAccount,
		BankHolder:     h.cfg.BankHolder,
	})
}
