// Package composite demonstrates the Composite pattern with books packed in
// boxes.
//
// A Book is a leaf with a price; a Box holds any mix of books and smaller
// boxes. Both satisfy Item, so code that totals a shipment or prints its
// contents never needs to know whether it is looking at one book or a crate
// of nested boxes — Total and Describe recurse through the tree uniformly.
//
// The pattern's strength is that clients treat part and whole identically;
// its weakness is the same uniformity, which makes it awkward to restrict
// what a container may hold (nothing stops a Box of Boxes of nothing).
package composite
