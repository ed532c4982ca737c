// Package builder demonstrates the Builder pattern with car assembly.
//
// A Car has enough optional parts that positional constructors get unreadable
// fast. CarBuilder accumulates the choices through chainable steps and Build
// validates the result once, so a half-specified car can never escape. The
// Director captures named presets (city runabout, long-haul tourer) as
// reusable build recipes.
//
// Builder pays off when construction has many optional knobs or ordering
// constraints; for a two-field struct it is pure ceremony.
package builder
