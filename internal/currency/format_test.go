package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shopweaver/internal/currency"
)

func TestFormatGroupsAndPadsFractions(t *testing.T) {
	assert.Equal(t, "1,234.50 ر.س", currency.Format(1234.5, "SAR"))
	assert.Equal(t, "299.00 ر.س", currency.Format(299, "SAR"))
	assert.Equal(t, "1,000,000.00 $", currency.Format(1000000, "USD"))
	assert.Equal(t, "0.00 €", currency.Format(0, "EUR"))
}

func TestFormatUnknownCodeFallsBackToCode(t *testing.T) {
	assert.Equal(t, "12.34 XYZ", currency.Format(12.34, "XYZ"))
}

func TestFormatDecimal(t *testing.T) {
	total := decimal.NewFromFloat(50).Mul(decimal.NewFromInt(2)).
		Add(decimal.NewFromFloat(30))
	assert.Equal(t, "130.00 ر.س", currency.FormatDecimal(total, "SAR"))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "د.إ", currency.Symbol("AED"))
	assert.Equal(t, "JPY", currency.Symbol("JPY"))
}
