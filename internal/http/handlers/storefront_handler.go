package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopweaver/internal/currency"
	applog "shopweaver/internal/log"
	"shopweaver/internal/services"
	"shopweaver/internal/validate"
)

type StorefrontHandler struct {
	Catalog *services.CatalogService
}

func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	sc := storeCtx(c)
	return render(c, themed(c).HomeTemplate(), fiber.Map{
		"Categories": sc.Categories,
		"Products":   sc.Products,
		"CartCount":  len(sc.CartLines()),
	})
}

func (h *StorefrontHandler) Category(c *fiber.Ctx) error {
	catID, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	sc := storeCtx(c)
	products, err := h.Catalog.ListProductsByCategory(sc.Store.ID, catID, 1, 12)
	if err != nil {
		applog.Error(c, "category.list.fail", err, map[string]any{"category": catID})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load this category"})
	}
	return render(c, themed(c).HomeTemplate(), fiber.Map{
		"Categories": sc.Categories,
		"CategoryID": catID,
		"Products":   products,
	})
}

func (h *StorefrontHandler) Product(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	sc := storeCtx(c)
	p, found := sc.Product(id)
	if !found {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, themed(c).ProductTemplate(), fiber.Map{
		"P":     p,
		"Price": currency.Format(p.Price, p.Currency),
	})
}

func (h *StorefrontHandler) Search(c *fiber.Ctx) error {
	sc := storeCtx(c)
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		return render(c, themed(c).HomeTemplate(), fiber.Map{"Q": "", "Products": []any{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{
			"Message": "Enter a valid keyword (letters/numbers only)",
		})
	}
	q = strings.ToLower(q)

	catID := strings.TrimSpace(c.Query("category"))
	if catID != "" {
		if _, ok := validate.ID(catID); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Invalid category"})
		}
	}
	inStockOnly := c.Query("in_stock") == "1"

	products, err := h.Catalog.Search(sc.Store.ID, q, catID, inStockOnly, 1, 20)
	if err != nil {
		applog.Error(c, "search.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load results. Please retry."})
	}
	return render(c, themed(c).HomeTemplate(), fiber.Map{
		"Q": q, "CategoryID": catID, "Products": products, "Count": len(products),
	})
}
