// Package datasource demonstrates the Decorator pattern as a layered data
// pipeline.
//
// A DataSource is anything that can store one text value and hand it back. The
// leaf implementation, MemoryStore, simply owns the value. Every other
// implementation is a layer wrapped around another DataSource: it transforms
// the value on the way in and applies the exact inverse on the way out.
//
//	store := datasource.NewMemoryStore("demo", nil)
//	src := datasource.Chain(store, datasource.NewReverseLayer, datasource.NewBase64Layer)
//	_ = src.Write("Hello world!")
//	v, _ := src.Read() // "Hello world!", stored reversed+encoded underneath
//
// Decorator trades a flat class-per-combination explosion for composition:
// any stack of layers, in any order, behaves like a single DataSource. The
// cost is that behaviour is spread across the chain, so each layer must keep
// a strict contract — its read path must invert its write path, and it must
// pass inner failures through untouched. A layer that breaks either rule
// silently corrupts every stack it appears in.
package datasource
