package datasource

import (
	"encoding/base64"
	"fmt"
)

// Base64Layer encodes the value with standard base64 on the way in and
// decodes it on the way out. Reading data that was not written through a
// compatible stack fails with ErrDecode.
type Base64Layer struct {
	*Wrapper
}

// NewBase64Layer wraps inner with base64 encoding.
func NewBase64Layer(inner DataSource) DataSource {
	return &Base64Layer{Wrapper: NewWrapper(inner)}
}

func (l *Base64Layer) Write(value string) error {
	return l.Inner().Write(base64.StdEncoding.EncodeToString([]byte(value)))
}

func (l *Base64Layer) Read() (string, error) {
	enc, err := l.Inner().Read()
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(raw), nil
}
