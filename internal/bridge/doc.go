// Package bridge demonstrates the Bridge pattern with page kinds rendered by
// interchangeable backends.
//
// Two hierarchies vary independently: what is being shown (an article, a
// product listing) and how it is drawn (plain text, HTML). Each page holds a
// Renderer and expresses itself only through that interface, so adding a new
// page kind or a new backend never multiplies the other side — the classic
// alternative is one class per (page, backend) pair.
//
// The price is a slightly more abstract API: a page cannot use anything a
// backend does not expose, so Renderer has to be designed up front to cover
// every output both sides will ever need.
package bridge
