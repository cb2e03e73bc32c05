package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopweaver/internal/cart"
	applog "shopweaver/internal/log"
	"shopweaver/internal/pos"
	"shopweaver/internal/validate"
)

// PosHandler is the JSON API behind the POS screen. The register is keyed by
// the session cookie and holds its own cart, separate from the storefront one.
type PosHandler struct {
	Terminal *pos.Terminal
}

func (h *PosHandler) register(c *fiber.Ctx) (*pos.Register, error) {
	sid, _ := c.Locals("sid").(string)
	return h.Terminal.Register(sid, storeCtx(c).Store)
}

// GET /pos
func (h *PosHandler) Screen(c *fiber.Ctx) error {
	return render(c, "pos", fiber.Map{"Products": storeCtx(c).Products})
}

// GET /api/v1/pos
func (h *PosHandler) State(c *fiber.Ctx) error {
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.state.fail", err)
	}
	return c.JSON(r.State())
}

type posItemReq struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// POST /api/v1/pos/items
func (h *PosHandler) AddItem(c *fiber.Ctx) error {
	var req posItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if _, ok := validate.ID(req.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing product_id"})
	}
	if req.Qty == 0 {
		req.Qty = 1
	}
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.add.fail", err)
	}
	st, err := r.Add(req.ProductID, req.Qty)
	if err != nil {
		return posError(c, "pos.add.fail", err)
	}
	applog.Info(c, "pos.add", map[string]any{"product": req.ProductID, "qty": req.Qty})
	return c.JSON(st)
}

// PUT /api/v1/pos/items/:id
func (h *PosHandler) UpdateItem(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing product id"})
	}
	var req posItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.update.fail", err)
	}
	st, err := r.UpdateQuantity(productID, req.Qty)
	if err != nil {
		return posError(c, "pos.update.fail", err)
	}
	return c.JSON(st)
}

// DELETE /api/v1/pos/items/:id
func (h *PosHandler) RemoveItem(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing product id"})
	}
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.remove.fail", err)
	}
	return c.JSON(r.Remove(productID))
}

// DELETE /api/v1/pos/items
func (h *PosHandler) ClearItems(c *fiber.Ctx) error {
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.clear.fail", err)
	}
	return c.JSON(r.Clear())
}

// POST /api/v1/pos/checkout
func (h *PosHandler) BeginCheckout(c *fiber.Ctx) error {
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.checkout.fail", err)
	}
	st, err := r.BeginCheckout()
	if err != nil {
		return posError(c, "pos.checkout.fail", err)
	}
	return c.JSON(st)
}

// DELETE /api/v1/pos/checkout
func (h *PosHandler) CancelCheckout(c *fiber.Ctx) error {
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.cancel.fail", err)
	}
	return c.JSON(r.CancelCheckout())
}

type posPayReq struct {
	Method string `json:"method"`
	Reason string `json:"reason"`
}

// POST /api/v1/pos/payment
func (h *PosHandler) Pay(c *fiber.Ctx) error {
	var req posPayReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.pay.fail", err)
	}
	order, err := r.CompletePayment(strings.ToUpper(strings.TrimSpace(req.Method)))
	if err != nil {
		return posError(c, "pos.pay.fail", err)
	}
	applog.Audit(c, "pos.sale", map[string]any{
		"order_id": order.ID,
		"total":    order.Total.String(),
		"method":   order.PaymentMethod,
	})
	return c.JSON(fiber.Map{"order": order, "state": r.State()})
}

// POST /api/v1/pos/payment/fail
func (h *PosHandler) FailPayment(c *fiber.Ctx) error {
	var req posPayReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	r, err := h.register(c)
	if err != nil {
		return posError(c, "pos.payfail.fail", err)
	}
	st, err := r.FailPayment(validate.Text(req.Reason, 120))
	if err != nil {
		return posError(c, "pos.payfail.fail", err)
	}
	applog.Security(c, "pos.payment.declined", map[string]any{"reason": st.FailReason})
	return c.JSON(st)
}

// DELETE /api/v1/pos
func (h *PosHandler) Close(c *fiber.Ctx) error {
	sid, _ := c.Locals("sid").(string)
	h.Terminal.Close(sid)
	return c.SendStatus(fiber.StatusNoContent)
}

func posError(c *fiber.Ctx, action string, err error) error {
	applog.Security(c, action, map[string]any{"error": err.Error()})
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, pos.ErrCartEmpty),
		errors.Is(err, pos.ErrBadPaymentMethod):
		status = fiber.StatusBadRequest
	case errors.Is(err, pos.ErrNotAwaiting), errors.Is(err, pos.ErrPaymentInFlight):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
