package cart

import "shopweaver/internal/domain"

// OrderLines converts the current lines into the order snapshot shape used at
// payment time.
func (l *Ledger) OrderLines() []domain.OrderLine {
	out := make([]domain.OrderLine, 0, len(l.lines))
	for _, ln := range l.lines {
		out = append(out, domain.OrderLine{
			ProductID: ln.Product.ID,
			Name:      ln.Product.Name,
			Qty:       ln.Qty,
			UnitPrice: decimalFromPrice(ln.Product.Price),
			Subtotal:  ln.Subtotal(),
		})
	}
	return out
}
