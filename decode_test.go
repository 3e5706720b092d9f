package jsonfixer

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type editorSettings struct {
	FontSize   int             `json:"editor.fontSize"`
	FontFamily string          `json:"editor.fontFamily"`
	Rulers     []int           `json:"editor.rulers"`
	Exclude    map[string]bool `json:"files.exclude"`
	Env        struct {
		Path  string `json:"PATH"`
		Quote string `json:"QUOTE"`
	} `json:"terminal.env"`
}

func TestUnmarshal(t *testing.T) {
	f, err := os.Open("testdata/settings.jsonc")
	require.NoError(t, err)
	defer f.Close()

	var s editorSettings
	require.NoError(t, Unmarshal(f, &s))

	assert.Equal(t, 14, s.FontSize)
	assert.Equal(t, "Fira Code, monospace", s.FontFamily)
	assert.Equal(t, []int{80, 120}, s.Rulers)
	assert.Equal(t, map[string]bool{
		"**/node_modules":           true,
		"**/*.tmp":                  true,
		"http://example.com//cache": false,
	}, s.Exclude)
	assert.Equal(t, `C:\tools\bin;${env:PATH}`, s.Env.Path)
	assert.Equal(t, `say "hi", // not a comment`, s.Env.Quote)
}

func TestUnmarshalErr(t *testing.T) {
	var testErr = errors.New("test error")

	var v interface{}
	err := Unmarshal(iotest.ErrReader(testErr), &v)
	assert.ErrorIs(t, err, testErr)

	// Anything that is not a comment or trailing comma still reaches the decoder
	err = Unmarshal(strings.NewReader(`{key: 1}`), &v)
	assert.Error(t, err)
}

func TestNewDecoderStream(t *testing.T) {
	dec := NewDecoder(strings.NewReader("{\"n\": 1,} // first\n{\"n\": 2,} /* second */ [3,]"))

	var values []interface{}
	for {
		var v interface{}
		err := dec.Decode(&v)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		values = append(values, v)
	}

	assert.Equal(t, []interface{}{
		map[string]interface{}{"n": 1.0},
		map[string]interface{}{"n": 2.0},
		[]interface{}{3.0},
	}, values)
}

func TestValid(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{`{"a": [1, 2,],}`, true},
		{"// only a comment\n42", true},
		{`[1,,2]`, false},
		{`{"unterminated": "string`, false},
		{`/* everything is a comment`, false},
		{`{unquoted: 1}`, false},
		{`{} {}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Valid(strings.NewReader(tt.arg))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("source error", func(t *testing.T) {
		var testErr = errors.New("test error")

		ok, err := Valid(iotest.ErrReader(testErr))
		assert.False(t, ok)
		assert.ErrorIs(t, err, testErr)
	})
}
