package server

import (
	"encoding/json"
	"errors"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint. On failure
// it writes a 400 JSON response and returns errResponseWritten. Callers
// should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param, label string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid "+label))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseBody decodes the request body twice: once into a generic map for
// field-presence validation, once into the typed destination. A malformed
// body gets a 400 and errResponseWritten.
func (s *Server) parseBody(c *fiber.Ctx, dest any) (map[string]any, error) {
	raw := c.Body()
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid request body"))
		return nil, errResponseWritten
	}
	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			_ = models.RespondWithError(c, models.NewValidationError("Invalid request body"))
			return nil, errResponseWritten
		}
	}
	return payload, nil
}

// requesterID resolves the acting user for a request: the userId body field
// when present, otherwise fallback. No authentication layer sits in front of
// this API, so the caller's claim is taken at face value.
func requesterID(payload map[string]any, fallback uint) uint {
	v, ok := payload["userId"]
	if !ok {
		return fallback
	}
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return fallback
	}
	return uint(f)
}
