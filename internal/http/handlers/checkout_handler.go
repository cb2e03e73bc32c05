package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopweaver/internal/currency"
	applog "shopweaver/internal/log"
	"shopweaver/internal/services"
	"shopweaver/internal/validate"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

func (h *CheckoutHandler) View(c *fiber.Ctx) error {
	sc := storeCtx(c)
	return render(c, themed(c).CheckoutTemplate(), fiber.Map{
		"Lines": sc.CartLines(),
		"Total": currency.FormatDecimal(sc.CartTotal(), sc.Store.Currency),
	})
}

// Complete runs the simulated payment: snapshot the cart into an order, clear
// it, and show the confirmation.
func (h *CheckoutHandler) Complete(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).SendString("name must be 1-60 characters")
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid email")
	}
	method := strings.ToUpper(strings.TrimSpace(c.FormValue("method")))

	sc := storeCtx(c)
	order, err := sc.Checkout(h.Checkout, method)
	if err != nil {
		applog.Security(c, "checkout.fail", map[string]any{"error": err.Error()})
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			return c.Status(fiber.StatusBadRequest).SendString("your cart is empty")
		case errors.Is(err, services.ErrBadPaymentMethod):
			return c.Status(fiber.StatusBadRequest).SendString("choose a payment method")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("could not complete checkout")
	}

	applog.Audit(c, "checkout.complete", map[string]any{
		"order_id": order.ID,
		"total":    order.Total.String(),
		"method":   order.PaymentMethod,
	})
	// The order is volatile: this render is the only surface that ever sees it.
	return render(c, themed(c).CheckoutTemplate(), fiber.Map{
		"Order":    order,
		"Total":    currency.FormatDecimal(order.Total, order.Currency),
		"Customer": fiber.Map{"Name": name, "Email": email},
		"Done":     true,
	})
}
