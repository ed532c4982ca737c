package adapter

import (
	"errors"
	"fmt"
)

// ErrDeclined is returned when the gateway refuses a charge.
var ErrDeclined = errors.New("charge declined")

// Receipt records a successful charge.
type Receipt struct {
	Cents int
	Ref   string
}

// Processor is the interface the rest of the application charges through.
type Processor interface {
	Charge(cents int) (Receipt, error)
}

// LegacyGateway is the old payments client. It speaks dollars-as-float and
// reports failure through a status string instead of an error.
type LegacyGateway struct {
	// Limit is the largest amount, in dollars, the gateway accepts.
	Limit float64

	charges int
}

// Submit attempts a charge and returns ("ok", ref) or ("declined", "").
func (g *LegacyGateway) Submit(dollars float64) (status, ref string) {
	if dollars <= 0 || (g.Limit > 0 && dollars > g.Limit) {
		return "declined", ""
	}
	g.charges++
	return "ok", fmt.Sprintf("LEG-%04d", g.charges)
}

// LegacyAdapter makes a LegacyGateway usable as a Processor.
type LegacyAdapter struct {
	Gateway *LegacyGateway
}

// Charge converts cents to the gateway's dollar amount and maps its status
// string onto the Processor error contract.
func (a *LegacyAdapter) Charge(cents int) (Receipt, error) {
	status, ref := a.Gateway.Submit(float64(cents) / 100)
	if status != "ok" {
		return Receipt{}, fmt.Errorf("%w: %d cents", ErrDeclined, cents)
	}
	return Receipt{Cents: cents, Ref: ref}, nil
}
