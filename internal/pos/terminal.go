package pos

import (
	"sync"

	"shopweaver/internal/domain"
	"shopweaver/internal/services"
)

// Terminal hands out one Register per POS session. A register's cart is local
// to the POS screen and never shared with the same session's storefront cart.
type Terminal struct {
	mu      sync.Mutex
	byID    map[string]*Register
	catalog *services.CatalogService
}

func NewTerminal(catalog *services.CatalogService) *Terminal {
	return &Terminal{byID: map[string]*Register{}, catalog: catalog}
}

func (t *Terminal) Register(sid string, store domain.Store) (*Register, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r, ok := t.byID[sid]; ok && r.store.ID == store.ID {
		return r, nil
	}
	products, err := t.catalog.ListProducts(store.ID)
	if err != nil {
		return nil, err
	}
	r := NewRegister(store, products)
	t.byID[sid] = r
	return r, nil
}

// Close drops a session's register; navigating away resets the POS flow.
func (t *Terminal) Close(sid string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.byID, sid)
}
