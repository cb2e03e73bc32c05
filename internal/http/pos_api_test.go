package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shopweaver/internal/config"
	"shopweaver/internal/http/handlers"
	"shopweaver/internal/repos"
)

// Minimal app with the JSON API surface only (no template rendering needed).
func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", DefaultStore: "st-volt"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(handlers.EnsureSession())

	withStore := handlers.ResolveStore(deps.Stores, deps.Sessions)
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
	api.Get("/landing", deps.AdminHandler.Content)
	api.Put("/landing", deps.AdminHandler.Save)
	api.Post("/landing/reset", deps.AdminHandler.Reset)

	return app
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

type apiClient struct {
	t   *testing.T
	app *fiber.App
	sid string
}

func (a *apiClient) do(method, path, body string) *http.Response {
	a.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if a.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: a.sid})
	}
	resp, err := a.app.Test(req)
	if err != nil {
		a.t.Fatal(err)
	}
	if sid := extractCookie(resp, "sid"); sid != "" {
		a.sid = sid
	}
	return resp
}

type posState struct {
	Phase string `json:"phase"`
	Lines []struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		Qty int `json:"qty"`
	} `json:"lines"`
	Total      string `json:"total"`
	Currency   string `json:"currency"`
	FailReason string `json:"fail_reason"`
}

func decodeState(t *testing.T, resp *http.Response) posState {
	t.Helper()
	var st posState
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestPosSaleOverHTTP(t *testing.T) {
	cl := &apiClient{t: t, app: newAPIApp(t)}

	resp := cl.do("GET", "/api/v1/pos", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("state: %d", resp.StatusCode)
	}
	if st := decodeState(t, resp); st.Phase != "IDLE" {
		t.Fatalf("want IDLE, got %s", st.Phase)
	}

	resp = cl.do("POST", "/api/v1/pos/items", `{"product_id":"p-anc-100","qty":2}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add: %d", resp.StatusCode)
	}
	st := decodeState(t, resp)
	if st.Phase != "BUILDING" || st.Total != "598" || st.Currency != "SAR" {
		t.Fatalf("bad state after add: %+v", st)
	}

	resp = cl.do("POST", "/api/v1/pos/checkout", "")
	if st = decodeState(t, resp); st.Phase != "AWAITING_PAYMENT" {
		t.Fatalf("want AWAITING_PAYMENT, got %s", st.Phase)
	}

	resp = cl.do("POST", "/api/v1/pos/payment", `{"method":"card"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pay: %d", resp.StatusCode)
	}
	var payResp struct {
		Order struct {
			ID    string `json:"id"`
			Total string `json:"total"`
		} `json:"order"`
		State posState `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payResp); err != nil {
		t.Fatal(err)
	}
	if payResp.Order.ID == "" || payResp.Order.Total != "598" {
		t.Fatalf("bad order: %+v", payResp.Order)
	}
	if payResp.State.Phase != "IDLE" || len(payResp.State.Lines) != 0 {
		t.Fatalf("register not reset: %+v", payResp.State)
	}
}

func TestPosRejectsUnknownProduct(t *testing.T) {
	cl := &apiClient{t: t, app: newAPIApp(t)}
	resp := cl.do("POST", "/api/v1/pos/items", `{"product_id":"p-ghost","qty":1}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestPosPaymentOutsideCheckoutConflicts(t *testing.T) {
	cl := &apiClient{t: t, app: newAPIApp(t)}
	resp := cl.do("POST", "/api/v1/pos/payment", `{"method":"cash"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("want 409, got %d", resp.StatusCode)
	}
}

func TestPosFailedPaymentKeepsAwaiting(t *testing.T) {
	cl := &apiClient{t: t, app: newAPIApp(t)}
	cl.do("POST", "/api/v1/pos/items", `{"product_id":"p-buds-20","qty":1}`)
	cl.do("POST", "/api/v1/pos/checkout", "")

	resp := cl.do("POST", "/api/v1/pos/payment/fail", `{"reason":"card declined"}`)
	st := decodeState(t, resp)
	if st.Phase != "AWAITING_PAYMENT" || st.FailReason != "card declined" {
		t.Fatalf("bad state after decline: %+v", st)
	}

	resp = cl.do("POST", "/api/v1/pos/payment", `{"method":"wallet"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("retry pay: %d", resp.StatusCode)
	}
}

func TestPosCheckoutEmptyCart(t *testing.T) {
	cl := &apiClient{t: t, app: newAPIApp(t)}
	resp := cl.do("POST", "/api/v1/pos/checkout", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}
