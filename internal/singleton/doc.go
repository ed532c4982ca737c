// Package singleton demonstrates the Singleton pattern as a lazily
// initialized, process-wide settings holder.
//
// Default returns the same *Settings on every call, created on first use
// behind a sync.Once guard, so concurrent first access is safe. Unlike the
// textbook version there is no private constructor trick: Settings is an
// ordinary struct, and code that wants testability should accept a *Settings
// from its composition root instead of reaching for Default. The accessor
// exists for the edges of a program where threading a value through is not
// worth it.
//
// Singletons are convenient and notoriously easy to abuse — hidden global
// state couples everything that touches it. Keeping the type constructible
// keeps the escape hatch open.
package singleton
