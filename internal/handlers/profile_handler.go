package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/middleware"
	"github.com/thewiseshop/pawtrait-backend/internal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	profile, err := h.profiles.Fetch(c.Context(), userID, middleware.UserEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(dto.ProfileResponse{
		ID:       profile.ID,
		Name:     profile.Name,
		Nickname: profile.Nickname,
		Email:    profile.Email,
		Credits:  profile.Credits,
		IsAdmin:  profile.IsAdmin,
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profiles.Update(c.Context(), userID, req.Name, req.Nickname)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(dto.ProfileResponse{
		ID:       profile.ID,
		Name:     profile.Name,
		Nickname: profile.Nickname,
		Email:    profile.Email,
		Credits:  profile.Credits,
		IsAdmin:  profile.IsAdmin,
	})
}
