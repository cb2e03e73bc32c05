package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopweaver/internal/themes"
)

// render injects the bound store, its theme renderer, and the CSRF token
// before handing off to the Views engine.
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if sc := storeCtx(c); sc != nil {
		data["Store"] = sc.Store
		data["Theme"] = themes.ByID(sc.Store.ThemeID)
		data["Hero"] = themes.RendererFor(themes.ThemeID(sc.Store.ThemeID)).Hero()
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// themed resolves the renderer for the bound store, falling back to minimal
// when no store is bound (shared admin surfaces).
func themed(c *fiber.Ctx) themes.Renderer {
	if sc := storeCtx(c); sc != nil {
		return themes.RendererFor(themes.ThemeID(sc.Store.ThemeID))
	}
	return themes.RendererFor(themes.Minimal)
}
