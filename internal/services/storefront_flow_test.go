package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"shopweaver/internal/domain"
	"shopweaver/internal/repos"
	"shopweaver/internal/services"
	"shopweaver/internal/session"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestStoreResolveExplicitThenDefault(t *testing.T) {
	db := memdb(t)
	storeSvc := services.NewStoreService(repos.NewStoreRepo(db), "st-luma")

	st, err := storeSvc.Resolve("st-brick", "")
	if err != nil {
		t.Fatal(err)
	}
	if st.ID != "st-brick" || st.ThemeID != "toys" || st.Currency != "USD" {
		t.Fatalf("bad store: %+v", st)
	}

	// unknown id falls through to the configured default
	st, err = storeSvc.Resolve("st-nope", "")
	if err != nil {
		t.Fatal(err)
	}
	if st.ID != "st-luma" {
		t.Fatalf("want default st-luma, got %s", st.ID)
	}
}

func TestStoreResolveByDomain(t *testing.T) {
	db := memdb(t)
	storeSvc := services.NewStoreService(repos.NewStoreRepo(db), "")

	st, err := storeSvc.Resolve("", "volt.shopweaver.test")
	if err != nil {
		t.Fatal(err)
	}
	if st.ID != "st-volt" {
		t.Fatalf("want st-volt, got %s", st.ID)
	}
}

func TestCatalogIsStoreScoped(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))

	volt, err := catalog.Search("st-volt", "buds", "", false, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(volt) != 1 || volt[0].ID != "p-buds-20" {
		t.Fatalf("bad volt search: %+v", volt)
	}

	luma, err := catalog.Search("st-luma", "buds", "", false, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(luma) != 0 {
		t.Fatalf("search leaked across stores: %+v", luma)
	}
}

func TestSearchInStockFilter(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))

	all, err := catalog.Search("st-volt", "", "cat-input", false, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	inStock, err := catalog.Search("st-volt", "", "cat-input", true, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	// p-mouse-8k is seeded out of stock
	if len(all) != 2 || len(inStock) != 1 {
		t.Fatalf("want 2 total / 1 in stock, got %d / %d", len(all), len(inStock))
	}
}

func TestStorefrontCheckoutFlow(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))
	storeRepo := repos.NewStoreRepo(db)
	sessions := session.NewManager(catalog)
	checkout := services.NewCheckoutService()

	store, err := storeRepo.Get("st-volt")
	if err != nil {
		t.Fatal(err)
	}
	sc, err := sessions.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}

	if err := sc.AddToCart("p-anc-100", 2); err != nil {
		t.Fatal(err)
	}
	if err := sc.AddToCart("p-buds-20", 1); err != nil {
		t.Fatal(err)
	}
	if got := sc.CartTotal().StringFixed(2); got != "747.50" {
		t.Fatalf("want total 747.50, got %s", got)
	}

	order, err := sc.Checkout(checkout, domain.PaymentCard)
	if err != nil {
		t.Fatal(err)
	}
	if order.Currency != "SAR" || len(order.Lines) != 2 {
		t.Fatalf("bad order: %+v", order)
	}
	if order.Total.StringFixed(2) != "747.50" {
		t.Fatalf("want order total 747.50, got %s", order.Total)
	}
	if len(sc.CartLines()) != 0 || !sc.CartTotal().IsZero() {
		t.Fatal("cart should be empty after checkout")
	}
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	db := memdb(t)
	catalog := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))
	sessions := session.NewManager(catalog)
	checkout := services.NewCheckoutService()

	store, err := repos.NewStoreRepo(db).Get("st-volt")
	if err != nil {
		t.Fatal(err)
	}
	sc, err := sessions.Context("sess-1", store)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sc.Checkout(checkout, domain.PaymentCash); err != services.ErrCartEmpty {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}
}
