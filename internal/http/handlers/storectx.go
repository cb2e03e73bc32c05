package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "shopweaver/internal/log"
	"shopweaver/internal/services"
	"shopweaver/internal/session"
	"shopweaver/internal/validate"
)

// EnsureSession assigns every visitor a session cookie; the sid keys both the
// storefront cart and the POS register.
func EnsureSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     "sid",
				Value:    sid,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Secure:   false, // enable true behind TLS
			})
		}
		c.Locals("sid", sid)
		return c.Next()
	}
}

// ResolveStore binds the request to a store context: explicit ?store= first,
// then the store cookie, then the request host, then the configured default.
func ResolveStore(stores *services.StoreService, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Query("store")
		if storeID == "" {
			storeID = c.Cookies("store_id")
		}
		if storeID != "" {
			if _, ok := validate.ID(storeID); !ok {
				applog.Security(c, "validation.fail", map[string]any{"field": "store"})
				storeID = ""
			}
		}

		st, err := stores.Resolve(storeID, c.Hostname())
		if err != nil {
			applog.Error(c, "store.resolve.fail", err, nil)
			return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{
				"Message": "No store is available right now.",
			})
		}
		if c.Cookies("store_id") != st.ID {
			c.Cookie(&fiber.Cookie{Name: "store_id", Value: st.ID, Path: "/", HTTPOnly: true})
		}

		sid, _ := c.Locals("sid").(string)
		sc, err := sessions.Context(sid, st)
		if err != nil {
			applog.Error(c, "store.context.fail", err, map[string]any{"store": st.ID})
			return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Could not load the store. Please try again.",
			})
		}

		c.Locals("store_id", st.ID)
		c.Locals("storectx", sc)
		return c.Next()
	}
}

func storeCtx(c *fiber.Ctx) *session.StoreContext {
	sc, _ := c.Locals("storectx").(*session.StoreContext)
	return sc
}
