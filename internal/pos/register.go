// Package pos implements the point-of-sale register: a checkout flow with its
// own cart, independent of any storefront session cart. A register walks
// IDLE -> BUILDING -> AWAITING_PAYMENT and back to IDLE on payment success.
package pos

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"shopweaver/internal/cart"
	"shopweaver/internal/domain"
)

// Register phases.
const (
	PhaseIdle            = "IDLE"
	PhaseBuilding        = "BUILDING"
	PhaseAwaitingPayment = "AWAITING_PAYMENT"
)

var (
	ErrCartEmpty        = errors.New("pos: cart is empty")
	ErrNotAwaiting      = errors.New("pos: no payment in progress")
	ErrPaymentInFlight  = errors.New("pos: payment already in progress")
	ErrBadPaymentMethod = errors.New("pos: unsupported payment method")
)

// Register is one POS terminal session.
type Register struct {
	mu         sync.Mutex
	store      domain.Store
	ledger     *cart.Ledger
	phase      string
	lastReason string // reason reported by the most recent failed payment
}

func NewRegister(store domain.Store, products []domain.Product) *Register {
	return &Register{
		store:  store,
		ledger: cart.NewLedger(products),
		phase:  PhaseIdle,
	}
}

// State is the snapshot the POS screen polls after every mutation.
type State struct {
	Phase      string          `json:"phase"`
	Lines      []cart.Line     `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	Currency   string          `json:"currency"`
	FailReason string          `json:"fail_reason,omitempty"`
}

func (r *Register) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Register) snapshot() State {
	return State{
		Phase:      r.phase,
		Lines:      r.ledger.Lines(),
		Total:      r.ledger.Total(),
		Currency:   r.store.Currency,
		FailReason: r.lastReason,
	}
}

func (r *Register) Add(productID string, qty int) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseAwaitingPayment {
		return r.snapshot(), ErrPaymentInFlight
	}
	if err := r.ledger.Add(productID, qty); err != nil {
		return r.snapshot(), err
	}
	r.phase = PhaseBuilding
	return r.snapshot(), nil
}

func (r *Register) UpdateQuantity(productID string, qty int) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseAwaitingPayment {
		return r.snapshot(), ErrPaymentInFlight
	}
	if err := r.ledger.UpdateQuantity(productID, qty); err != nil {
		return r.snapshot(), err
	}
	r.settlePhase()
	return r.snapshot(), nil
}

func (r *Register) Remove(productID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseAwaitingPayment {
		return r.snapshot()
	}
	r.ledger.Remove(productID)
	r.settlePhase()
	return r.snapshot()
}

func (r *Register) Clear() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseAwaitingPayment {
		return r.snapshot()
	}
	r.ledger.Clear()
	r.phase = PhaseIdle
	return r.snapshot()
}

// BeginCheckout opens the payment panel. The cart must have at least one line.
func (r *Register) BeginCheckout() (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseAwaitingPayment {
		return r.snapshot(), ErrPaymentInFlight
	}
	if r.ledger.Len() == 0 {
		return r.snapshot(), ErrCartEmpty
	}
	r.phase = PhaseAwaitingPayment
	r.lastReason = ""
	return r.snapshot(), nil
}

// CompletePayment simulates a successful payment: it emits the order snapshot,
// clears the cart, and returns the register to idle.
func (r *Register) CompletePayment(method string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseAwaitingPayment {
		return domain.Order{}, ErrNotAwaiting
	}
	if !domain.ValidPaymentMethod(method) {
		return domain.Order{}, fmt.Errorf("%w: %q", ErrBadPaymentMethod, method)
	}
	order := domain.NewOrder(r.store.ID, r.store.Currency, method, r.ledger.OrderLines(), r.ledger.Total())
	r.ledger.Clear()
	r.phase = PhaseIdle
	r.lastReason = ""
	return order, nil
}

// FailPayment records a declined payment and keeps the register awaiting
// payment so the cashier can retry with another method.
func (r *Register) FailPayment(reason string) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseAwaitingPayment {
		return r.snapshot(), ErrNotAwaiting
	}
	r.lastReason = reason
	return r.snapshot(), nil
}

// CancelCheckout closes the payment panel without charging.
func (r *Register) CancelCheckout() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == PhaseAwaitingPayment {
		r.lastReason = ""
		r.settlePhase()
	}
	return r.snapshot()
}

func (r *Register) settlePhase() {
	if r.ledger.Len() == 0 {
		r.phase = PhaseIdle
	} else {
		r.phase = PhaseBuilding
	}
}
