// Package session owns the per-session store context: the resolved store, its
// catalog, and the cart ledger every storefront surface reads and mutates.
// Contexts are explicit objects handed to handlers through the Manager; there
// is no package-level current store.
package session

import (
	"sync"

	"github.com/shopspring/decimal"

	"shopweaver/internal/cart"
	"shopweaver/internal/domain"
	"shopweaver/internal/services"
)

// StoreContext is the read/write surface one storefront session sees. All cart
// mutators go through it so concurrent requests from the same session stay
// serialized.
type StoreContext struct {
	Store      domain.Store
	Products   []domain.Product
	Categories []domain.Category

	mu     sync.Mutex
	ledger *cart.Ledger
}

func (sc *StoreContext) AddToCart(productID string, qty int) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.ledger.Add(productID, qty)
}

func (sc *StoreContext) UpdateCartQuantity(productID string, qty int) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.ledger.UpdateQuantity(productID, qty)
}

func (sc *StoreContext) RemoveFromCart(productID string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.ledger.Remove(productID)
}

func (sc *StoreContext) ClearCart() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.ledger.Clear()
}

func (sc *StoreContext) CartLines() []cart.Line {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.ledger.Lines()
}

func (sc *StoreContext) CartTotal() decimal.Decimal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.ledger.Total()
}

// Checkout completes payment for the session's cart under the context lock.
func (sc *StoreContext) Checkout(svc *services.CheckoutService, method string) (domain.Order, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return svc.Complete(sc.Store, sc.ledger, method)
}

// Product looks up a product from the context's catalog.
func (sc *StoreContext) Product(id string) (domain.Product, bool) {
	for _, p := range sc.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Manager hands out one StoreContext per (session, store) pair. Switching a
// session to another store builds a fresh context — and so a fresh, empty
// cart — rather than carrying lines across tenants.
type Manager struct {
	mu      sync.Mutex
	byID    map[string]*StoreContext
	catalog *services.CatalogService
}

func NewManager(catalog *services.CatalogService) *Manager {
	return &Manager{byID: map[string]*StoreContext{}, catalog: catalog}
}

func (m *Manager) Context(sid string, store domain.Store) (*StoreContext, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sc, ok := m.byID[sid]; ok && sc.Store.ID == store.ID {
		return sc, nil
	}

	products, err := m.catalog.ListProducts(store.ID)
	if err != nil {
		return nil, err
	}
	categories, err := m.catalog.ListCategories(store.ID)
	if err != nil {
		return nil, err
	}

	sc := &StoreContext{
		Store:      store,
		Products:   products,
		Categories: categories,
		ledger:     cart.NewLedger(products),
	}
	m.byID[sid] = sc
	return sc, nil
}

// Drop discards a session's context (browser tab closed, session expired).
func (m *Manager) Drop(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, sid)
}
