package datasource

// ReverseLayer reverses the rune order of the value in both directions.
// Reversal is total and self-inverse, so this layer has no failure mode of
// its own.
type ReverseLayer struct {
	*Wrapper
}

// NewReverseLayer wraps inner with rune-order reversal.
func NewReverseLayer(inner DataSource) DataSource {
	return &ReverseLayer{Wrapper: NewWrapper(inner)}
}

func (l *ReverseLayer) Write(value string) error {
	return l.Inner().Write(reverse(value))
}

func (l *ReverseLayer) Read() (string, error) {
	v, err := l.Inner().Read()
	if err != nil {
		return "", err
	}
	return reverse(v), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
