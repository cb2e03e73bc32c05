package session_test

import (
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"shopweaver/internal/repos"
	"shopweaver/internal/services"
	"shopweaver/internal/session"
)

func setup(t *testing.T) (*session.Manager, *repos.StoreRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	catalog := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))
	return session.NewManager(catalog), repos.NewStoreRepo(db)
}

func TestContextIsReusedPerSession(t *testing.T) {
	mgr, stores := setup(t)
	store, err := stores.Get("st-volt")
	if err != nil {
		t.Fatal(err)
	}

	a, err := mgr.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.AddToCart("p-anc-100", 1); err != nil {
		t.Fatal(err)
	}

	b, err := mgr.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("same session and store must share one context")
	}
	if len(b.CartLines()) != 1 {
		t.Fatal("cart lost between requests")
	}
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	mgr, stores := setup(t)
	store, err := stores.Get("st-volt")
	if err != nil {
		t.Fatal(err)
	}

	a, err := mgr.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}
	b, err := mgr.Context("sess-2", store)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.AddToCart("p-anc-100", 3); err != nil {
		t.Fatal(err)
	}
	if len(b.CartLines()) != 0 {
		t.Fatal("carts leaked across sessions")
	}
}

func TestSwitchingStoreStartsFreshCart(t *testing.T) {
	mgr, stores := setup(t)
	volt, err := stores.Get("st-volt")
	if err != nil {
		t.Fatal(err)
	}
	luma, err := stores.Get("st-luma")
	if err != nil {
		t.Fatal(err)
	}

	sc, err := mgr.Context("sess-1", volt)
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.AddToCart("p-anc-100", 1); err != nil {
		t.Fatal(err)
	}

	sc2, err := mgr.Context("sess-1", luma)
	if err != nil {
		t.Fatal(err)
	}
	if sc2.Store.ID != "st-luma" {
		t.Fatalf("wrong store: %s", sc2.Store.ID)
	}
	if len(sc2.CartLines()) != 0 {
		t.Fatal("cart lines must not carry across tenants")
	}
	// products in the new context belong to the new store
	if _, ok := sc2.Product("p-anc-100"); ok {
		t.Fatal("catalog leaked across tenants")
	}
	if _, ok := sc2.Product("p-ring-aur"); !ok {
		t.Fatal("missing tenant product")
	}
}

func TestCatalogMutatorsRejectForeignProducts(t *testing.T) {
	mgr, stores := setup(t)
	store, err := stores.Get("st-luma")
	if err != nil {
		t.Fatal(err)
	}
	sc, err := mgr.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}
	// p-set-castle belongs to st-brick
	if err := sc.AddToCart("p-set-castle", 1); err == nil {
		t.Fatal("expected not-found for another tenant's product")
	}
}

func TestDropForgetsSession(t *testing.T) {
	mgr, stores := setup(t)
	store, err := stores.Get("st-volt")
	if err != nil {
		t.Fatal(err)
	}
	a, err := mgr.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.AddToCart("p-anc-100", 1); err != nil {
		t.Fatal(err)
	}

	mgr.Drop("sess-1")
	b, err := mgr.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.CartLines()) != 0 {
		t.Fatal("dropped session kept its cart")
	}
}
