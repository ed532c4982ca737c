package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gopatterns/internal/bridge"
)

func TestArticle_TextBackend(t *testing.T) {
	a := bridge.Article{
		R:     bridge.TextRenderer{},
		Head:  "go patterns",
		Paras: []string{"First paragraph.", "Second paragraph."},
	}

	want := "Go Patterns\n===========\nFirst paragraph.\nSecond paragraph."
	assert.Equal(t, want, a.Render())
}

func TestArticle_HTMLBackend(t *testing.T) {
	a := bridge.Article{
		R:     bridge.HTMLRenderer{},
		Head:  "go patterns",
		Paras: []string{"Only paragraph."},
	}

	assert.Equal(t, "<h1>Go Patterns</h1>\n<p>Only paragraph.</p>", a.Render())
}

func TestProductPage_BothBackends(t *testing.T) {
	p := bridge.ProductPage{
		Name:     "widget",
		Cents:    1250,
		Features: []string{"small", "blue"},
	}

	p.R = bridge.TextRenderer{}
	assert.Equal(t, "Widget\n======\n$12.50\n* small\n* blue", p.Render())

	p.R = bridge.HTMLRenderer{}
	assert.Equal(t, "<h1>Widget</h1>\n<p>$12.50</p>\n<li>small</li>\n<li>blue</li>", p.Render())
}
