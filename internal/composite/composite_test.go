package composite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopatterns/internal/composite"
)

func TestBox_TotalNested(t *testing.T) {
	inner := (&composite.Box{Label: "paperbacks"}).Add(
		composite.Book{Title: "The Go Programming Language", Cents: 3999},
		composite.Book{Title: "SICP", Cents: 2500},
	)
	outer := (&composite.Box{Label: "shipment"}).Add(
		inner,
		composite.Book{Title: "TAPL", Cents: 6000},
	)

	assert.Equal(t, 6499, inner.TotalCents())
	assert.Equal(t, 12499, outer.TotalCents())
}

func TestBox_EmptyTotalsZero(t *testing.T) {
	assert.Equal(t, 0, (&composite.Box{Label: "empty"}).TotalCents())
}

func TestDescribe_IndentsByDepth(t *testing.T) {
	box := (&composite.Box{Label: "outer"}).Add(
		(&composite.Box{Label: "inner"}).Add(composite.Book{Title: "A", Cents: 100}),
	)

	want := "+ outer\n  + inner\n    - A ($1.00)"
	require.Equal(t, want, box.Describe(0))
}

func TestBookAndBoxAreItems(t *testing.T) {
	var items []composite.Item = []composite.Item{
		composite.Book{Title: "B", Cents: 150},
		&composite.Box{Label: "box"},
	}
	total := 0
	for _, it := range items {
		total += it.TotalCents()
	}
	assert.Equal(t, 150, total)
}
