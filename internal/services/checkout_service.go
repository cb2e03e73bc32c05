package services

import (
	"errors"

	"shopweaver/internal/cart"
	"shopweaver/internal/domain"
)

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrBadPaymentMethod = errors.New("unsupported payment method")
)

// CheckoutService turns a storefront session's ledger into an order snapshot.
// Payment is a simulated synchronous success; the order is handed back for the
// confirmation page and then dropped.
type CheckoutService struct{}

func NewCheckoutService() *CheckoutService { return &CheckoutService{} }

func (s *CheckoutService) Complete(store domain.Store, ledger *cart.Ledger, method string) (domain.Order, error) {
	if ledger.Len() == 0 {
		return domain.Order{}, ErrCartEmpty
	}
	if !domain.ValidPaymentMethod(method) {
		return domain.Order{}, ErrBadPaymentMethod
	}
	order := domain.NewOrder(store.ID, store.Currency, method, ledger.OrderLines(), ledger.Total())
	ledger.Clear()
	return order, nil
}
