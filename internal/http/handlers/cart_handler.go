package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopweaver/internal/cart"
	"shopweaver/internal/currency"
	applog "shopweaver/internal/log"
	"shopweaver/internal/validate"
)

type CartHandler struct{}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sc := storeCtx(c)
	return render(c, themed(c).CartTemplate(), fiber.Map{
		"Lines": sc.CartLines(),
		"Total": currency.FormatDecimal(sc.CartTotal(), sc.Store.Currency),
	})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty, ok := validate.Qty(c.FormValue("qty"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "qty"})
		return c.Status(fiber.StatusBadRequest).SendString("quantity must be at least 1")
	}
	if err := storeCtx(c).AddToCart(productID, qty); err != nil {
		return cartError(c, "cart.add.fail", err, productID)
	}
	applog.Info(c, "cart.add", map[string]any{"product": productID, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	// qty <= 0 is a valid update here: it removes the line
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid qty")
	}
	if err := storeCtx(c).UpdateCartQuantity(productID, qty); err != nil {
		return cartError(c, "cart.update.fail", err, productID)
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	storeCtx(c).RemoveFromCart(productID)
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	storeCtx(c).ClearCart()
	return c.Redirect("/cart")
}

func cartError(c *fiber.Ctx, action string, err error, productID string) error {
	applog.Security(c, action, map[string]any{"product": productID, "error": err.Error()})
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).SendString("unknown product")
	case errors.Is(err, cart.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).SendString("quantity must be at least 1")
	}
	return c.Status(fiber.StatusInternalServerError).SendString("could not update cart")
}
