package server

import (
	"errors"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// bearerToken extracts the token from the Authorization header, or ""
// when the header is absent or malformed.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// actorID returns the authenticated user's ID set by AuthRequired.
func (s *Server) actorID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}

// parseUUID extracts a route parameter by name as a UUID string.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseUUID(c *fiber.Ctx, param string) (string, error) {
	id := c.Params(param)
	if err := validation.ValidateID(id); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return "", errResponseWritten
	}
	return id, nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "postId" -> "post ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// validateBodyUUID checks a UUID carried in a request body. On failure it
// writes a 400 response and returns errResponseWritten.
func validateBodyUUID(c *fiber.Ctx, id, field string) error {
	if err := validation.ValidateID(id); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+field))
		return errResponseWritten
	}
	return nil
}

// parsePageParams reads page/limit query parameters. Out-of-range values
// are rejected at the boundary, not clamped. On failure it writes a 400
// response and returns errResponseWritten.
func (s *Server) parsePageParams(c *fiber.Ctx) (models.PageParams, error) {
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 0)

	params, err := models.NewPageParams(page, limit)
	if err != nil {
		_ = models.RespondWithError(c, models.HTTPStatus(err), err)
		return models.PageParams{}, errResponseWritten
	}
	return params, nil
}

// respondError writes the error with the status its code implies and
// records it on the active request span.
func respondError(c *fiber.Ctx, err error) error {
	observability.RecordErrorInContext(c.UserContext(), err)
	return models.RespondWithError(c, models.HTTPStatus(err), err)
}
