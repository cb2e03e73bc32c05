package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopweaver/internal/domain"
	"shopweaver/internal/landing"
	applog "shopweaver/internal/log"
	"shopweaver/internal/validate"
)

// AdminHandler serves the landing-page customizer. Edits live only for the
// admin session; there is no backend persistence.
type AdminHandler struct {
	Editor *landing.Editor
}

func (h *AdminHandler) sid(c *fiber.Ctx) string {
	sid, _ := c.Locals("sid").(string)
	return sid
}

// GET /admin/landing
func (h *AdminHandler) Page(c *fiber.Ctx) error {
	return render(c, "admin_landing", fiber.Map{"Content": h.Editor.Content(h.sid(c))})
}

// GET /api/v1/landing
func (h *AdminHandler) Content(c *fiber.Ctx) error {
	return c.JSON(h.Editor.Content(h.sid(c)))
}

// PUT /api/v1/landing — full-document replace
func (h *AdminHandler) Save(c *fiber.Ctx) error {
	var doc domain.LandingContent
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	doc.HeroTitle = validate.Text(doc.HeroTitle, 120)
	doc.HeroSubtitle = validate.Text(doc.HeroSubtitle, 240)
	doc.CTALabel = validate.Text(doc.CTALabel, 40)
	for i := range doc.Features {
		doc.Features[i].Title = validate.Text(doc.Features[i].Title, 80)
		doc.Features[i].Description = validate.Text(doc.Features[i].Description, 240)
	}

	h.Editor.SetContent(h.sid(c), doc)
	applog.Audit(c, "landing.save", map[string]any{"features": len(doc.Features)})
	return c.JSON(h.Editor.Content(h.sid(c)))
}

// POST /api/v1/landing/reset
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	h.Editor.Reset(h.sid(c))
	applog.Audit(c, "landing.reset", nil)
	return c.JSON(h.Editor.Content(h.sid(c)))
}
