package jsonfixer

import (
	"io"
)

// maxConsecutiveEmptyReads is how often the source may return 0, nil before Read gives up with io.ErrNoProgress
const maxConsecutiveEmptyReads = 100

// Reader removes comments and trailing commas from the relaxed JSON read from its source.
// It is an io.Reader itself, so it can be put in front of any JSON decoder:
//
//	dec := json.NewDecoder(jsonfixer.NewReader(f))
//
// Reader works on bytes and keeps no more than a single byte of lookahead, no matter how
// large the input is. Bytes inside string literals are never changed.
//
// The output is only guaranteed to be valid JSON if the input was valid JSON apart from
// comments and trailing commas; anything else is passed through for the decoder to reject.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src io.Reader
	// br is src if it can read single bytes itself
	br io.ByteReader

	state   state
	pending byte

	// scratch is used for single-byte reads from src when it is not an io.ByteReader
	scratch [1]byte
	// err is a source error that arrived together with a byte, returned on the next read
	err error
}

// NewReader returns a Reader that reads relaxed JSON from r
func NewReader(r io.Reader) *Reader {
	fx := new(Reader)
	fx.Reset(r)
	return fx
}

// Reset discards the state of fx and makes it read from r
func (fx *Reader) Reset(r io.Reader) {
	br, _ := r.(io.ByteReader)
	*fx = Reader{
		src: r,
		br:  br,
	}
}

// Read implements io.Reader. It fills p until it is full or the input ends.
// An error from the source is returned as-is, together with the number of bytes written to p before it happened.
func (fx *Reader) Read(p []byte) (int, error) {
	var n int

	for n < len(p) {
		b, o, err := fx.step()
		if err != nil {
			return n, err
		}

		switch o {
		case emitByte:
			p[n] = b
			n++
		case endOfStream:
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
	}

	return n, nil
}

// ReadByte implements io.ByteReader. It returns io.EOF after the last byte.
func (fx *Reader) ReadByte() (byte, error) {
	for {
		b, o, err := fx.step()
		if err != nil {
			return 0, err
		}

		switch o {
		case emitByte:
			return b, nil
		case endOfStream:
			return 0, io.EOF
		}
	}
}

// next reads one byte from the source. ok is false at the end of the input.
func (fx *Reader) next() (b byte, ok bool, err error) {
	if fx.err != nil {
		err, fx.err = fx.err, nil
		return 0, false, err
	}

	if fx.br != nil {
		b, err = fx.br.ReadByte()
		if err == io.EOF {
			return 0, false, nil
		}
		return b, err == nil, err
	}

	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := fx.src.Read(fx.scratch[:])
		if n > 0 {
			// The byte is used now, the error is reported by the next call
			if err != io.EOF {
				fx.err = err
			}
			return fx.scratch[0], true, nil
		}
		if err == io.EOF {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
	}

	return 0, false, io.ErrNoProgress
}

// step advances the state machine by one transition. It reads at most one byte from
// the source and produces at most one byte of output.
func (fx *Reader) step() (byte, outcome, error) {
	// States that only write out what was decided before
	switch fx.state {
	case pendingMain:
		fx.state = stateMain
		return fx.pending, emitByte, nil
	case pendingComma:
		fx.state = stateComma
		return fx.pending, emitByte, nil
	case pendingQuote:
		fx.state = stateString
		return quote, emitByte, nil
	case stateDone:
		return 0, endOfStream, nil
	}

	b, ok, err := fx.next()
	if err != nil {
		return 0, emitNothing, err
	}
	if !ok {
		// Whatever was held back (a comma, a slash, an open comment) is dropped
		fx.state = stateDone
		return 0, endOfStream, nil
	}

	switch fx.state {
	case stateMain:
		switch b {
		case quote:
			fx.state = stateString
			return b, emitByte, nil
		case comma:
			fx.state = stateComma
		case slash:
			fx.state = stateMainSlash
		default:
			return b, emitByte, nil
		}

	case stateMainSlash:
		switch b {
		case slash:
			fx.state = stateLineComment
		case star:
			fx.state = stateBlockComment
		case quote:
			// The slash in front of a quote is dropped
			fx.state = stateString
			return b, emitByte, nil
		default:
			fx.state, fx.pending = pendingMain, b
			return slash, emitByte, nil
		}

	case stateLineComment:
		if b == newline {
			fx.state = stateMain
		}

	case stateBlockComment:
		if b == star {
			fx.state = stateBlockCommentStar
		}

	case stateBlockCommentStar:
		switch b {
		case slash:
			fx.state = stateMain
		case star:
			// "**/" still closes the comment
		default:
			fx.state = stateBlockComment
		}

	case stateString:
		switch b {
		case quote:
			fx.state = stateMain
		case backslash:
			fx.state = stateStringEscape
		}
		return b, emitByte, nil

	case stateStringEscape:
		fx.state = stateString
		return b, emitByte, nil

	case stateComma:
		switch {
		case b == closeArray || b == closeObject:
			// Trailing comma: it is never written
			fx.state = stateMain
			return b, emitByte, nil
		case b == quote:
			fx.state = pendingQuote
			return comma, emitByte, nil
		case b == slash:
			fx.state = stateCommaSlash
		case isJSONSpace(b):
			return b, emitByte, nil
		default:
			fx.state, fx.pending = pendingMain, b
			return comma, emitByte, nil
		}

	case stateCommaSlash:
		switch b {
		case slash:
			fx.state = stateCommaLineComment
		case star:
			fx.state = stateCommaBlockComment
		default:
			// Not a comment, but the comma is still undecided
			fx.state, fx.pending = pendingComma, b
			return slash, emitByte, nil
		}

	case stateCommaLineComment:
		if b == newline {
			fx.state = stateComma
		}

	case stateCommaBlockComment:
		if b == star {
			fx.state = stateCommaBlockCommentStar
		}

	case stateCommaBlockCommentStar:
		switch b {
		case slash:
			fx.state = stateComma
		case star:
			// "**/" still closes the comment
		default:
			fx.state = stateCommaBlockComment
		}

	default:
		panic("jsonfixer: invalid state " + fx.state.String())
	}

	return 0, emitNothing, nil
}
