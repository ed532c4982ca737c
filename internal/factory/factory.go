package factory

import "fmt"

// Transport is the product: something that can carry cargo.
type Transport interface {
	// Deliver describes moving the cargo and returns the manifest line.
	Deliver(cargo string) string
	// CostCents is the flat price of one delivery.
	CostCents() int
}

// Truck delivers by road.
type Truck struct{}

func (Truck) Deliver(cargo string) string { return fmt.Sprintf("truck hauls %s by road", cargo) }
func (Truck) CostCents() int              { return 15000 }

// Ship delivers by sea.
type Ship struct{}

func (Ship) Deliver(cargo string) string { return fmt.Sprintf("ship carries %s by sea", cargo) }
func (Ship) CostCents() int              { return 9000 }

// Planner is the creator: NewTransport is the factory method.
type Planner interface {
	NewTransport() Transport
}

// RoadPlanner creates trucks.
type RoadPlanner struct{}

func (RoadPlanner) NewTransport() Transport { return Truck{} }

// SeaPlanner creates ships.
type SeaPlanner struct{}

func (SeaPlanner) NewTransport() Transport { return Ship{} }

// PlanDelivery is the template that uses whatever transport the planner
// creates.
func PlanDelivery(p Planner, cargo string) string {
	t := p.NewTransport()
	return fmt.Sprintf("%s ($%d.%02d)", t.Deliver(cargo), t.CostCents()/100, t.CostCents()%100)
}
