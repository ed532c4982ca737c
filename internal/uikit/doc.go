// Package uikit demonstrates the Abstract Factory pattern with themed widget
// families.
//
// A WidgetFactory produces a button and a checkbox that belong together;
// LightFactory and DarkFactory each produce a coherent family. RenderForm
// builds a small form against whichever factory it is handed, which makes
// mixing a light button with a dark checkbox impossible by construction.
//
// Abstract Factory is Factory Method scaled to whole product families. It
// shines when consistency across products matters; the downside is that
// adding a new product kind touches every factory at once.
package uikit
