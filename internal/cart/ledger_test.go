package cart_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopweaver/internal/cart"
	"shopweaver/internal/domain"
)

func catalog() []domain.Product {
	return []domain.Product{
		{ID: "p-keyboard", StoreID: "st-tech", Name: "Mechanical Keyboard", Price: 50, Currency: "SAR"},
		{ID: "p-mouse", StoreID: "st-tech", Name: "Wireless Mouse", Price: 30, Currency: "SAR"},
		{ID: "p-cable", StoreID: "st-tech", Name: "USB-C Cable", Price: 9.99, Currency: "SAR"},
	}
}

func TestAddMergesSameProduct(t *testing.T) {
	l := cart.NewLedger(catalog())
	require.NoError(t, l.Add("p-keyboard", 2))
	require.NoError(t, l.Add("p-keyboard", 3))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Qty)
}

func TestAddRejectsUnknownProduct(t *testing.T) {
	l := cart.NewLedger(catalog())
	err := l.Add("p-ghost", 1)
	assert.ErrorIs(t, err, cart.ErrProductNotFound)
	assert.Zero(t, l.Len())
}

func TestAddRejectsNonPositiveQty(t *testing.T) {
	l := cart.NewLedger(catalog())
	assert.ErrorIs(t, l.Add("p-mouse", 0), cart.ErrInvalidQuantity)
	assert.ErrorIs(t, l.Add("p-mouse", -4), cart.ErrInvalidQuantity)
	assert.Zero(t, l.Len())
}

func TestUpdateQuantitySetsAndFloors(t *testing.T) {
	l := cart.NewLedger(catalog())
	require.NoError(t, l.Add("p-keyboard", 1))

	require.NoError(t, l.UpdateQuantity("p-keyboard", 3))
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
	assert.True(t, l.Total().Equal(decimal.NewFromInt(150)), "total = %s", l.Total())

	// zero and negative both remove the line entirely
	require.NoError(t, l.UpdateQuantity("p-keyboard", 0))
	assert.Zero(t, l.Len())

	require.NoError(t, l.Add("p-keyboard", 2))
	require.NoError(t, l.UpdateQuantity("p-keyboard", -5))
	assert.Zero(t, l.Len())
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	l := cart.NewLedger(catalog())
	assert.ErrorIs(t, l.UpdateQuantity("p-mouse", 2), cart.ErrProductNotFound)
}

func TestRemoveIsUnconditional(t *testing.T) {
	l := cart.NewLedger(catalog())
	require.NoError(t, l.Add("p-keyboard", 1))
	require.NoError(t, l.Add("p-mouse", 1))

	l.Remove("p-keyboard")
	l.Remove("p-keyboard") // absent line: no-op

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p-mouse", lines[0].Product.ID)
}

func TestClearIsIdempotent(t *testing.T) {
	l := cart.NewLedger(catalog())
	require.NoError(t, l.Add("p-keyboard", 2))
	require.NoError(t, l.Add("p-cable", 7))

	l.Clear()
	assert.Zero(t, l.Len())
	assert.True(t, l.Total().IsZero())

	l.Clear()
	assert.Zero(t, l.Len())
	assert.True(t, l.Total().IsZero())

	// ledger still usable after clear
	require.NoError(t, l.Add("p-mouse", 1))
	assert.Equal(t, 1, l.Len())
}

func TestTotalMatchesLineSums(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		n := 1 + rng.Intn(8)
		products := make([]domain.Product, n)
		for i := range products {
			price := 0.0
			if rng.Intn(5) != 0 { // keep some zero-priced products in the mix
				price = float64(rng.Intn(100000)) / 100
			}
			products[i] = domain.Product{ID: string(rune('a' + i)), Price: price}
		}

		l := cart.NewLedger(products)
		want := decimal.Zero
		for _, p := range products {
			qty := 1 + rng.Intn(9)
			if err := l.Add(p.ID, qty); err != nil {
				t.Fatal(err)
			}
			want = want.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(qty))))
		}
		if !l.Total().Equal(want) {
			t.Fatalf("iter %d: total %s != sum %s", iter, l.Total(), want)
		}
	}
}

func TestLinesPreserveInsertionOrder(t *testing.T) {
	l := cart.NewLedger(catalog())
	require.NoError(t, l.Add("p-cable", 1))
	require.NoError(t, l.Add("p-keyboard", 1))
	require.NoError(t, l.Add("p-mouse", 1))
	l.Remove("p-keyboard")
	require.NoError(t, l.Add("p-keyboard", 1))

	ids := []string{}
	for _, ln := range l.Lines() {
		ids = append(ids, ln.Product.ID)
	}
	assert.Equal(t, []string{"p-cable", "p-mouse", "p-keyboard"}, ids)
}
