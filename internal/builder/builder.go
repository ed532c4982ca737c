package builder

import (
	"errors"
	"fmt"
)

// Car is the assembled product.
type Car struct {
	Model   string
	Engine  string
	Seats   int
	Sunroof bool
	GPS     bool
}

// String renders a one-line spec sheet.
func (c Car) String() string {
	extras := ""
	if c.Sunroof {
		extras += " +sunroof"
	}
	if c.GPS {
		extras += " +gps"
	}
	return fmt.Sprintf("%s (%s, %d seats%s)", c.Model, c.Engine, c.Seats, extras)
}

// CarBuilder accumulates parts; Build validates and returns the Car.
type CarBuilder struct {
	car Car
}

func New(model string) *CarBuilder {
	return &CarBuilder{car: Car{Model: model}}
}

func (b *CarBuilder) Engine(kind string) *CarBuilder {
	b.car.Engine = kind
	return b
}

func (b *CarBuilder) Seats(n int) *CarBuilder {
	b.car.Seats = n
	return b
}

func (b *CarBuilder) Sunroof() *CarBuilder {
	b.car.Sunroof = true
	return b
}

func (b *CarBuilder) GPS() *CarBuilder {
	b.car.GPS = true
	return b
}

// Build returns the car, failing if mandatory parts are missing.
func (b *CarBuilder) Build() (Car, error) {
	if b.car.Engine == "" {
		return Car{}, errors.New("car needs an engine")
	}
	if b.car.Seats <= 0 {
		return Car{}, errors.New("car needs at least one seat")
	}
	return b.car, nil
}

// Director encodes standard build recipes.
type Director struct{}

// CityCar is the small-and-cheap preset.
func (Director) CityCar() (Car, error) {
	return New("Pixel").Engine("electric").Seats(2).Build()
}

// Tourer is the long-distance preset.
func (Director) Tourer() (Car, error) {
	return New("Horizon").Engine("hybrid").Seats(5).Sunroof().GPS().Build()
}
