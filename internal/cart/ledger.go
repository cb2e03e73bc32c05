// Package cart implements the in-memory quantity ledger behind both the
// storefront cart and the POS order panel. A ledger is scoped to one session
// and one catalog; it never outlives either.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"shopweaver/internal/domain"
)

var (
	// ErrProductNotFound reports an operation on a product id outside the
	// ledger's catalog (Add) or outside the cart (UpdateQuantity).
	ErrProductNotFound = errors.New("cart: product not found")
	// ErrInvalidQuantity reports an Add with a non-positive quantity.
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
)

// Line is one (product, quantity) pair. Qty is always >= 1 while the line is
// in the ledger.
type Line struct {
	Product domain.Product `json:"product"`
	Qty     int            `json:"qty"`
}

func (ln Line) Subtotal() decimal.Decimal {
	return decimalFromPrice(ln.Product.Price).Mul(decimal.NewFromInt(int64(ln.Qty)))
}

func decimalFromPrice(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price)
}

// Ledger keys lines by product id and keeps them in insertion order.
// It is a plain data structure: callers that share a ledger across goroutines
// must serialize access (the session manager does).
type Ledger struct {
	index map[string]domain.Product
	lines []Line
	pos   map[string]int
}

// NewLedger builds a ledger over the given catalog. Adds for products outside
// the catalog are rejected with ErrProductNotFound.
func NewLedger(products []domain.Product) *Ledger {
	idx := make(map[string]domain.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return &Ledger{index: idx, pos: map[string]int{}}
}

// Add merges qty into an existing line or appends a new one.
func (l *Ledger) Add(productID string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	p, ok := l.index[productID]
	if !ok {
		return ErrProductNotFound
	}
	if i, ok := l.pos[productID]; ok {
		l.lines[i].Qty += qty
		return nil
	}
	l.pos[productID] = len(l.lines)
	l.lines = append(l.lines, Line{Product: p, Qty: qty})
	return nil
}

// UpdateQuantity sets a line's quantity. A quantity <= 0 removes the line, so
// a non-positive quantity can never be observed on a stored line.
func (l *Ledger) UpdateQuantity(productID string, qty int) error {
	i, ok := l.pos[productID]
	if !ok {
		return ErrProductNotFound
	}
	if qty <= 0 {
		l.deleteAt(productID, i)
		return nil
	}
	l.lines[i].Qty = qty
	return nil
}

// Remove deletes the line unconditionally. Removing an absent line is a no-op.
func (l *Ledger) Remove(productID string) {
	if i, ok := l.pos[productID]; ok {
		l.deleteAt(productID, i)
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.lines = l.lines[:0]
	l.pos = map[string]int{}
}

// Lines returns a copy of the lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Len() int { return len(l.lines) }

// Total recomputes the sum of line subtotals on every call; nothing is cached.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range l.lines {
		total = total.Add(ln.Subtotal())
	}
	return total
}

func (l *Ledger) deleteAt(productID string, i int) {
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	delete(l.pos, productID)
	for j := i; j < len(l.lines); j++ {
		l.pos[l.lines[j].Product.ID] = j
	}
}
