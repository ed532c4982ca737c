package facade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopatterns/internal/adapter"
	"gopatterns/internal/facade"
)

func newCheckout(limitDollars float64) *facade.Checkout {
	return &facade.Checkout{
		Inventory: &facade.Inventory{Stock: map[string]int{"BOOK-1": 3}},
		Payments:  &adapter.LegacyAdapter{Gateway: &adapter.LegacyGateway{Limit: limitDollars}},
		Shipping:  &facade.Shipping{CentsPerUnit: 300},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	co := newCheckout(1000)
	co.NewID = func() string { return "order-1" }

	order, err := co.PlaceOrder("BOOK-1", 2, 2500)
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, 5600, order.ChargedCents) // 2*2500 goods + 2*300 shipping
	assert.Equal(t, 600, order.ShippingCents)
	assert.NotEmpty(t, order.PaymentRef)
	assert.Equal(t, 1, co.Inventory.Stock["BOOK-1"])
}

func TestPlaceOrder_OutOfStock(t *testing.T) {
	co := newCheckout(1000)

	_, err := co.PlaceOrder("BOOK-1", 5, 2500)
	require.ErrorIs(t, err, facade.ErrOutOfStock)
	assert.Equal(t, 3, co.Inventory.Stock["BOOK-1"], "failed order must not consume stock")
}

func TestPlaceOrder_DeclinedRestoresStock(t *testing.T) {
	co := newCheckout(1) // $1 limit; any real order is declined

	_, err := co.PlaceOrder("BOOK-1", 2, 2500)
	require.ErrorIs(t, err, adapter.ErrDeclined)
	assert.Equal(t, 3, co.Inventory.Stock["BOOK-1"])
}

func TestPlaceOrder_DefaultIDsAreUnique(t *testing.T) {
	co := newCheckout(1000)

	a, err := co.PlaceOrder("BOOK-1", 1, 100)
	require.NoError(t, err)
	b, err := co.PlaceOrder("BOOK-1", 1, 100)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
