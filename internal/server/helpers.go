// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"
	"strings"
	"unicode"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseQty extracts the optional :qty route parameter. A missing parameter
// means no limit (0).
func (s *Server) parseQty(c *fiber.Ctx) (int, error) {
	raw := c.Params("qty")
	if raw == "" {
		return 0, nil
	}
	qty, err := c.ParamsInt("qty")
	if err != nil || qty <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid quantity"))
		return 0, errResponseWritten
	}
	return qty, nil
}

// requireOwner verifies that the authenticated user is the owner addressed by
// the route. On mismatch it writes a 403 response and returns
// errResponseWritten.
func (s *Server) requireOwner(c *fiber.Ctx, ownerID uint) error {
	userID := c.Locals("userID").(uint)
	if userID != ownerID {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewPermissionDeniedError())
		return errResponseWritten
	}
	return nil
}

// respondError maps an application error to its canonical status and writes it.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID", "commentId" -> "comment ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}
