package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /api/users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	params, err := s.parsePageParams(c)
	if err != nil {
		return nil
	}

	users, total, err := s.userService.ListUsers(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPage(users, total, params))
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PATCH /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Email *string `json:"email"`
		Name  *string `json:"name"`
		Bio   *string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: id,
		Email:  req.Email,
		Name:   req.Name,
		Bio:    req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeactivateUser handles DELETE /api/users/:id. Accounts are switched
// off, not erased; their published posts drop out of public listings.
func (s *Server) DeactivateUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.Deactivate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
