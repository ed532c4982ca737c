package uikit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gopatterns/internal/uikit"
)

func TestRenderForm_Light(t *testing.T) {
	want := "(x) accept terms\n( ) subscribe to newsletter\n[ submit ]"
	assert.Equal(t, want, uikit.RenderForm(uikit.LightFactory{}))
}

func TestRenderForm_Dark(t *testing.T) {
	want := "{#} ACCEPT TERMS\n{.} SUBSCRIBE TO NEWSLETTER\n< SUBMIT >"
	assert.Equal(t, want, uikit.RenderForm(uikit.DarkFactory{}))
}

func TestFamiliesStayCoherent(t *testing.T) {
	for _, f := range []uikit.WidgetFactory{uikit.LightFactory{}, uikit.DarkFactory{}} {
		out := uikit.RenderForm(f)
		assert.NotEmpty(t, out)
	}

	// The same label renders differently per family.
	light := uikit.LightFactory{}.NewButton().Press("ok")
	dark := uikit.DarkFactory{}.NewButton().Press("ok")
	assert.NotEqual(t, light, dark)
}
