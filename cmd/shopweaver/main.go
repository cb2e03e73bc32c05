package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"shopweaver/internal/config"
	"shopweaver/internal/http/handlers"
	applog "shopweaver/internal/log"
	"shopweaver/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// The POS/admin JSON APIs are same-origin XHR; forms keep the token
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})
	app.Use(handlers.EnsureSession())

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	log.Printf("[static] /static -> ./web/static")
	log.Printf("[static] /media  -> %s", mediaDir)

	app.Static("/static", "./web/static")
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		full := filepath.Join(mediaDir, clean)
		return c.SendFile(full, true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)
	withStore := handlers.ResolveStore(deps.Stores, deps.Sessions)

	// Storefront pages (rendered through the store's theme)
	app.Get("/", withStore, deps.StorefrontHandler.Home)
	app.Get("/search", withStore, limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.StorefrontHandler.Search)
	app.Get("/category/:id", withStore, deps.StorefrontHandler.Category)
	app.Get("/product/:id", withStore, deps.StorefrontHandler.Product)

	// Cart & checkout
	app.Get("/cart", withStore, deps.CartHandler.View)
	app.Post("/cart", withStore, deps.CartHandler.Add)
	app.Post("/cart/update", withStore, deps.CartHandler.Update)
	app.Post("/cart/remove", withStore, deps.CartHandler.Remove)
	app.Post("/cart/clear", withStore, deps.CartHandler.Clear)
	app.Get("/checkout", withStore, deps.CheckoutHandler.View)
	app.Post("/checkout", withStore, deps.CheckoutHandler.Complete)

	// POS screen + API
	app.Get("/pos", withStore, deps.PosHandler.Screen)
	api := app.Group("/api/v1", withStore)
	api.Get("/themes", deps.ThemeHandler.List)
	api.Get("/themes/:id", deps.ThemeHandler.Get)
	api.Get("/availability", deps.AvailabilityHandler.Check)
	api.Get("/pos", deps.PosHandler.State)
	api.Post("/pos/items", deps.PosHandler.AddItem)
	api.Put("/pos/items/:id", deps.PosHandler.UpdateItem)
	api.Delete("/pos/items/:id", deps.PosHandler.RemoveItem)
	api.Delete("/pos/items", deps.PosHandler.ClearItems)
	api.Post("/pos/checkout", deps.PosHandler.BeginCheckout)
	api.Delete("/pos/checkout", deps.PosHandler.CancelCheckout)
	api.Post("/pos/payment", deps.PosHandler.Pay)
	api.Post("/pos/payment/fail", deps.PosHandler.FailPayment)
	api.Delete("/pos", deps.PosHandler.Close)

	// Admin landing-page customizer
	app.Get("/admin/landing", withStore, deps.AdminHandler.Page)
	api.Get("/landing", deps.AdminHandler.Content)
	api.Put("/landing", deps.AdminHandler.Save)
	api.Post("/landing/reset", deps.AdminHandler.Reset)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
