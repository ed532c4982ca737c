package uikit

import (
	"fmt"
	"strings"
)

// Button is one product kind.
type Button interface {
	Press(label string) string
}

// Checkbox is the other product kind.
type Checkbox interface {
	Toggle(label string, on bool) string
}

// WidgetFactory produces a matched family of widgets.
type WidgetFactory interface {
	NewButton() Button
	NewCheckbox() Checkbox
}

// ---------- light family ----------

type lightButton struct{}

func (lightButton) Press(label string) string { return fmt.Sprintf("[ %s ]", label) }

type lightCheckbox struct{}

func (lightCheckbox) Toggle(label string, on bool) string {
	return fmt.Sprintf("(%s) %s", mark(on, "x", " "), label)
}

// LightFactory produces the light theme family.
type LightFactory struct{}

func (LightFactory) NewButton() Button     { return lightButton{} }
func (LightFactory) NewCheckbox() Checkbox { return lightCheckbox{} }

// ---------- dark family ----------

type darkButton struct{}

func (darkButton) Press(label string) string { return fmt.Sprintf("< %s >", strings.ToUpper(label)) }

type darkCheckbox struct{}

func (darkCheckbox) Toggle(label string, on bool) string {
	return fmt.Sprintf("{%s} %s", mark(on, "#", "."), strings.ToUpper(label))
}

// DarkFactory produces the dark theme family.
type DarkFactory struct{}

func (DarkFactory) NewButton() Button     { return darkButton{} }
func (DarkFactory) NewCheckbox() Checkbox { return darkCheckbox{} }

func mark(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

// RenderForm lays out a consent form using one widget family.
func RenderForm(f WidgetFactory) string {
	b := f.NewButton()
	c := f.NewCheckbox()
	return strings.Join([]string{
		c.Toggle("accept terms", true),
		c.Toggle("subscribe to newsletter", false),
		b.Press("submit"),
	}, "\n")
}
