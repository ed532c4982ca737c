// Package adapter demonstrates the Adapter pattern with a payments example.
//
// The application charges cards through the Processor interface: integer
// cents in, a Receipt out, failures as errors. The company's legacy gateway
// predates that contract — it takes dollars as a float and reports failure
// through a status string. LegacyAdapter implements Processor on top of the
// gateway, converting units and translating statuses into errors.
//
// Adapter buys compatibility without touching either side: callers keep the
// clean interface, the gateway keeps its historical one. The trade-off is an
// extra indirection that has to faithfully translate every quirk of the old
// contract, unit conversion and error mapping included.
package adapter
