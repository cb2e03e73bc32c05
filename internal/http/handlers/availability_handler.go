package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopweaver/internal/currency"
	"shopweaver/internal/domain"
	"shopweaver/internal/services"
	"shopweaver/internal/validate"
)

type AvailabilityHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/availability?productId=...
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Query("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}

	p, err := h.Catalog.GetProduct(productID)
	if err != nil || p.ID == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown product"})
	}

	status := "OUT_OF_STOCK"
	if p.InStock {
		status = "IN_STOCK"
	}
	return c.JSON(domain.Availability{
		Status: status,
		Price:  currency.Format(p.Price, p.Currency),
	})
}
