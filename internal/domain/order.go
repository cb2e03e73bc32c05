package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted by the POS and storefront checkout.
const (
	PaymentCash   = "CASH"
	PaymentCard   = "CARD"
	PaymentWallet = "WALLET"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet:
		return true
	}
	return false
}

// Order is the snapshot produced at the moment of a successful payment.
// It is never persisted; callers hand it to the confirmation surface and drop it.
type Order struct {
	ID            string          `json:"id"`
	StoreID       string          `json:"store_id,omitempty"`
	Lines         []OrderLine     `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// NewOrder stamps an order snapshot with an id and creation time.
func NewOrder(storeID, currency, method string, lines []OrderLine, total decimal.Decimal) Order {
	return Order{
		ID:            uuid.NewString(),
		StoreID:       storeID,
		Lines:         lines,
		Total:         total,
		Currency:      currency,
		PaymentMethod: method,
		CreatedAt:     time.Now().UTC(),
	}
}

type LandingContent struct {
	HeroTitle    string    `json:"hero_title"`
	HeroSubtitle string    `json:"hero_subtitle"`
	HeroImage    string    `json:"hero_image"`
	CTALabel     string    `json:"cta_label"`
	CTAURL       string    `json:"cta_url"`
	Features     []Feature `json:"features"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
