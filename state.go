package jsonfixer

// Bytes the state machine reacts to. Everything else is copied through.
const (
	slash     = '/'
	star      = '*'
	backslash = '\\'
	quote     = '"'
	newline   = '\n'
	comma     = ','

	closeArray  = ']'
	closeObject = '}'
)

// isJSONSpace reports whether b is one of the four whitespace bytes JSON allows between tokens
func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// state is the lexical position of a Reader. States named pending* are emit-only:
// they write the Reader's pending byte without reading from the source.
type state uint8

const (
	// stateMain is the default: outside strings, no comma waiting for a decision
	stateMain state = iota
	// stateMainSlash has seen a '/' and waits for the byte deciding whether a comment starts
	stateMainSlash
	// stateLineComment discards until a newline, then returns to stateMain
	stateLineComment
	stateBlockComment
	// stateBlockCommentStar is a block comment whose last byte was '*'
	stateBlockCommentStar
	// pendingMain writes the pending byte and returns to stateMain
	pendingMain

	stateString
	// stateStringEscape has written a backslash; the next byte is copied no matter what it is
	stateStringEscape
	// pendingQuote writes the quote that opens a string after a comma was written
	pendingQuote

	// stateComma holds back a comma until the next significant byte shows whether it is trailing
	stateComma
	stateCommaSlash
	stateCommaLineComment
	stateCommaBlockComment
	stateCommaBlockCommentStar
	// pendingComma writes the pending byte and returns to stateComma
	pendingComma

	// stateDone is reached at the end of the input. The source is not read again.
	stateDone
)

var stateNames = [...]string{
	stateMain:                  "main",
	stateMainSlash:             "main-slash",
	stateLineComment:           "line-comment",
	stateBlockComment:          "block-comment",
	stateBlockCommentStar:      "block-comment-star",
	pendingMain:                "pending-main",
	stateString:                "string",
	stateStringEscape:          "string-escape",
	pendingQuote:               "pending-quote",
	stateComma:                 "comma",
	stateCommaSlash:            "comma-slash",
	stateCommaLineComment:      "comma-line-comment",
	stateCommaBlockComment:     "comma-block-comment",
	stateCommaBlockCommentStar: "comma-block-comment-star",
	pendingComma:               "pending-comma",
	stateDone:                  "done",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// outcome is the result of a single step of the state machine
type outcome uint8

const (
	// emitNothing means the step consumed input without producing output; step again
	emitNothing outcome = iota
	// emitByte means the step produced exactly one output byte
	emitByte
	// endOfStream means there is no more output
	endOfStream
)
