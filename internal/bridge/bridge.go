package bridge

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Renderer is the implementation side of the bridge: a drawing backend.
type Renderer interface {
	Title(text string) string
	Paragraph(text string) string
	ListItem(text string) string
}

// titleCase normalizes headings regardless of backend. Casers are stateful,
// so one is built per call.
func titleCase(text string) string {
	return cases.Title(language.English).String(text)
}

// TextRenderer draws for terminals.
type TextRenderer struct{}

func (TextRenderer) Title(text string) string {
	t := titleCase(text)
	return t + "\n" + strings.Repeat("=", len(t))
}

func (TextRenderer) Paragraph(text string) string { return text }

func (TextRenderer) ListItem(text string) string { return "* " + text }

// HTMLRenderer draws for browsers.
type HTMLRenderer struct{}

func (HTMLRenderer) Title(text string) string {
	return "<h1>" + titleCase(text) + "</h1>"
}

func (HTMLRenderer) Paragraph(text string) string { return "<p>" + text + "</p>" }

func (HTMLRenderer) ListItem(text string) string { return "<li>" + text + "</li>" }

// Article is one abstraction: prose under a heading.
type Article struct {
	R     Renderer
	Head  string
	Paras []string
}

func (a Article) Render() string {
	lines := []string{a.R.Title(a.Head)}
	for _, p := range a.Paras {
		lines = append(lines, a.R.Paragraph(p))
	}
	return strings.Join(lines, "\n")
}

// ProductPage is another abstraction: a priced listing of features.
type ProductPage struct {
	R        Renderer
	Name     string
	Cents    int
	Features []string
}

func (p ProductPage) Render() string {
	lines := []string{
		p.R.Title(p.Name),
		p.R.Paragraph(fmt.Sprintf("$%d.%02d", p.Cents/100, p.Cents%100)),
	}
	for _, f := range p.Features {
		lines = append(lines, p.R.ListItem(f))
	}
	return strings.Join(lines, "\n")
}
