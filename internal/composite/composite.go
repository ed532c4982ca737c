package composite

import (
	"fmt"
	"strings"
)

// Item is anything with a price that can describe itself: a single book or a
// box of items.
type Item interface {
	// TotalCents returns the summed price of the item and everything inside it.
	TotalCents() int
	// Describe renders the item as an indented tree at the given depth.
	Describe(depth int) string
}

// Book is the leaf item.
type Book struct {
	Title string
	Cents int
}

func (b Book) TotalCents() int { return b.Cents }

func (b Book) Describe(depth int) string {
	return fmt.Sprintf("%s- %s ($%d.%02d)", indent(depth), b.Title, b.Cents/100, b.Cents%100)
}

// Box holds books and smaller boxes.
type Box struct {
	Label string
	Items []Item
}

// Add appends items to the box and returns it for chaining.
func (b *Box) Add(items ...Item) *Box {
	b.Items = append(b.Items, items...)
	return b
}

func (b *Box) TotalCents() int {
	total := 0
	for _, it := range b.Items {
		total += it.TotalCents()
	}
	return total
}

func (b *Box) Describe(depth int) string {
	lines := []string{fmt.Sprintf("%s+ %s", indent(depth), b.Label)}
	for _, it := range b.Items {
		lines = append(lines, it.Describe(depth+1))
	}
	return strings.Join(lines, "\n")
}

func indent(depth int) string { return strings.Repeat("  ", depth) }
