//go:build gofuzz
// +build gofuzz

package fuzz

import (
	"bytes"
	"encoding/json"
	"io"
	"testing/iotest"

	"github.com/xarantolus/jsonfixer"
)

func Fuzz(data []byte) (ret int) {
	bulk := jsonfixer.Bytes(data)

	// Reading one byte at a time must give the same result as reading everything at once
	one, err := io.ReadAll(jsonfixer.NewReader(iotest.OneByteReader(bytes.NewReader(data))))
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(bulk, one) {
		panic("output depends on how the input is read")
	}

	// Returns 1 for something that turned into valid JSON, everything else is neutral (0)
	if json.Valid(bulk) {
		ret = 1
	}

	return
}
