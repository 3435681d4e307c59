package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/middleware"
	"github.com/thewiseshop/pawtrait-backend/internal/models"
	"github.com/thewiseshop/pawtrait-backend/internal/services"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	order, err := h.orders.Create(c.Context(), middleware.UserID(c),
		req.ProductType, req.OrderName, req.Amount, req.PackageID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPackage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// Confirm consumes the widget's return handshake. Clients must clear the
// query parameters after calling so a refresh cannot re-trigger it; the
// conditional status flip makes a replay harmless either way.
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	var req dto.ConfirmOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	order, err := h.orders.Confirm(c.Context(), middleware.UserID(c),
		req.PaymentKey, req.OrderCode, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAmountMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrOrderDecided):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPaymentsOff):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}

	return c.JSON(toOrderResponse(order))
}

func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	orders, err := h.orders.ListForUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list orders",
		})
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"orders": resp})
}

func toOrderResponse(o *models.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		OrderCode:   o.OrderCode,
		ProductType: o.ProductType,
		OrderName:   o.OrderName,
		Amount:      o.Amount,
		Credits:     o.Credits,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
