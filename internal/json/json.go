// Package json is the single JSON configuration shared by rex: sonic with
// sorted map keys and without HTML escaping, so patterns and paths are
// printed as written.
package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	SortMapKeys:      true,
	CompactMarshaler: true,
	ValidateString:   true,
}.Froze()

// Encoder is a streaming JSON encoder.
type Encoder = sonic.Encoder

// Marshal encodes v.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// NewEncoder returns an encoder writing one JSON value per line to w.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}
