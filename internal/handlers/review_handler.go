package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/middleware"
	"github.com/thewiseshop/pawtrait-backend/internal/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviews.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list reviews",
		})
	}
	return c.JSON(dto.ReviewListResponse{Reviews: reviews, Total: len(reviews)})
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	review, err := h.reviews.Create(c.Context(), &req, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidReview) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteReviewRequest
	// Body is optional; owners delete without a password.
	_ = c.BodyParser(&req)

	err := h.reviews.Delete(c.Context(), c.Params("id"), req.Password, middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSeedImmutable), errors.Is(err, services.ErrDeleteRefused):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrReviewNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to delete review",
			})
		}
	}

	return c.JSON(fiber.Map{"deleted": true})
}

// Wipe removes every persisted review. Gated behind the admin token route.
func (h *ReviewHandler) Wipe(c *fiber.Ctx) error {
	deleted, err := h.reviews.Wipe(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to wipe reviews",
		})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
