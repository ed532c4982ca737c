package datasource

// Wrapper is the pass-through base for layers. It holds exactly one inner
// DataSource and delegates both operations verbatim; concrete layers embed it
// and override only the direction they transform.
type Wrapper struct {
	inner DataSource
}

// NewWrapper wraps inner without adding any transformation.
func NewWrapper(inner DataSource) *Wrapper { return &Wrapper{inner: inner} }

// Inner returns the wrapped DataSource.
func (w *Wrapper) Inner() DataSource { return w.inner }

func (w *Wrapper) Write(value string) error { return w.inner.Write(value) }

func (w *Wrapper) Read() (string, error) { return w.inner.Read() }
