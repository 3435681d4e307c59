package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/middleware"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"github.com/thewiseshop/pawtrait-backend/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
	profiles *services.ProfileService
}

func NewPaymentHandler(payments *services.PaymentService, profiles *services.ProfileService) *PaymentHandler {
	return &PaymentHandler{payments: payments, profiles: profiles}
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.CreatePaymentRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profiles.Fetch(c.Context(), userID, middleware.UserEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	created, err := h.payments.Create(c.Context(), profile, req.PackageID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPackage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit payment request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(services.ToPaymentResponse(created))
}

func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	requests, err := h.payments.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list payment requests",
		})
	}

	resp := dto.PaymentRequestListResponse{
		Requests: make([]dto.PaymentRequestResponse, 0, len(requests)),
		Total:    int64(len(requests)),
	}
	for i := range requests {
		resp.Requests = append(resp.Requests, services.ToPaymentResponse(&requests[i]))
	}
	return c.JSON(resp)
}

// ListAll serves the admin dashboard; ?status=PENDING narrows the view.
func (h *PaymentHandler) ListAll(c *fiber.Ctx) error {
	requests, total, err := h.payments.ListAll(c.Context(), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list payment requests",
		})
	}

	resp := dto.PaymentRequestListResponse{
		Requests: make([]dto.PaymentRequestResponse, 0, len(requests)),
		Total:    total,
	}
	for i := range requests {
		resp.Requests = append(resp.Requests, services.ToPaymentResponse(&requests[i]))
	}
	return c.JSON(resp)
}

func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, h.payments.Approve)
}

func (h *PaymentHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, h.payments.Reject)
}

func (h *PaymentHandler) decide(c *fiber.Ctx, decide func(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error)) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request id",
		})
	}

	req, err := decide(c.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyDecided):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to process decision",
			})
		}
	}

	return c.JSON(services.ToPaymentResponse(req))
}

// Wipe removes every payment request. Gated behind the admin token route.
func (h *PaymentHandler) Wipe(c *fiber.Ctx) error {
	deleted, err := h.payments.Wipe(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to wipe payment requests",
		})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
