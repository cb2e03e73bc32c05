package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopweaver/internal/log"
	"shopweaver/internal/themes"
)

type ThemeHandler struct{}

// GET /api/v1/themes
func (h *ThemeHandler) List(c *fiber.Ctx) error {
	return c.JSON(themes.Available())
}

// GET /api/v1/themes/:id
//
// Unknown ids resolve to the minimal theme instead of erroring; the response
// carries the id that was actually resolved so callers can tell.
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	d := themes.ByID(id)
	if !themes.Known(id) {
		applog.Info(c, "theme.fallback", map[string]any{"requested": id, "resolved": string(d.ID)})
	}
	return c.JSON(d)
}
