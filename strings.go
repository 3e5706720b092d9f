package jsonfixer

import (
	"bytes"
	"strings"
)

// String removes comments and trailing commas from data and returns the result
func String(data string) string {
	var out strings.Builder
	out.Grow(len(data))

	fx := NewReader(strings.NewReader(data))
	for {
		b, err := fx.ReadByte()
		if err != nil {
			// strings.Reader never fails, so this is the end of the input
			return out.String()
		}
		out.WriteByte(b)
	}
}

// Bytes removes comments and trailing commas from data and returns the result in a new slice
func Bytes(data []byte) []byte {
	out := make([]byte, 0, len(data))

	fx := NewReader(bytes.NewReader(data))
	for {
		b, err := fx.ReadByte()
		if err != nil {
			return out
		}
		out = append(out, b)
	}
}
