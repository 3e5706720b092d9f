package jsonfixer

import (
	"encoding/json"
	"io"
)

// NewDecoder returns a json.Decoder that reads relaxed JSON from r.
// Like any json.Decoder it can decode a stream of several values.
func NewDecoder(r io.Reader) *json.Decoder {
	return json.NewDecoder(NewReader(r))
}

// Unmarshal decodes the first JSON value from r into pointer.
// Comments and trailing commas in the input are ignored.
func Unmarshal(r io.Reader, pointer interface{}) error {
	return NewDecoder(r).Decode(pointer)
}

// Valid reports whether r contains exactly one JSON value once comments and trailing commas are removed.
// The only errors returned are those of r.
func Valid(r io.Reader) (bool, error) {
	data, err := io.ReadAll(NewReader(r))
	if err != nil {
		return false, err
	}

	return json.Valid(data), nil
}
