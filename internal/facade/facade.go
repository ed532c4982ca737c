package facade

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gopatterns/internal/adapter"
)

var ErrOutOfStock = errors.New("out of stock")

// Inventory tracks how many units of each SKU remain.
type Inventory struct {
	Stock map[string]int
}

// Reserve takes n units of sku or fails without side effects.
func (inv *Inventory) Reserve(sku string, n int) error {
	if inv.Stock[sku] < n {
		return fmt.Errorf("%w: %s", ErrOutOfStock, sku)
	}
	inv.Stock[sku] -= n
	return nil
}

// Shipping quotes a flat rate per unit.
type Shipping struct {
	CentsPerUnit int
}

func (s *Shipping) Quote(units int) int { return s.CentsPerUnit * units }

// Order is the confirmation PlaceOrder returns.
type Order struct {
	ID            string
	SKU           string
	Units         int
	ChargedCents  int
	ShippingCents int
	PaymentRef    string
}

// Checkout is the facade over inventory, payments and shipping.
type Checkout struct {
	Inventory *Inventory
	Payments  adapter.Processor
	Shipping  *Shipping

	// NewID generates order ids; defaults to uuid.NewString.
	NewID func() string
}

// PlaceOrder reserves stock, charges the card (goods plus shipping) and
// returns the confirmed order. Subsystem failures propagate unchanged.
func (c *Checkout) PlaceOrder(sku string, units, unitCents int) (Order, error) {
	if err := c.Inventory.Reserve(sku, units); err != nil {
		return Order{}, err
	}
	shipping := c.Shipping.Quote(units)
	total := units*unitCents + shipping

	rcpt, err := c.Payments.Charge(total)
	if err != nil {
		// Undo the reservation so a declined card does not leak stock.
		c.Inventory.Stock[sku] += units
		return Order{}, err
	}

	newID := c.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return Order{
		ID:            newID(),
		SKU:           sku,
		Units:         units,
		ChargedCents:  total,
		ShippingCents: shipping,
		PaymentRef:    rcpt.Ref,
	}, nil
}
