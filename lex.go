package xmldoc

// LexKind classifies a single lexical unit produced by the Lexer
// (spec.md §3). The kind determines exactly which character sequences
// Text may hold.
type LexKind int

const (
	LeftAngleBracket LexKind = iota
	RightAngleBracket
	LeftSquareBracket
	RightSquareBracket
	QuestionMark
	ExclamationPoint
	Dash
	SingleQuote
	DoubleQuote
	Equals
	Underscore
	Period
	Colon
	Semicolon
	Ampersand
	ForwardSlash
	Whitespace
	NewLine
	Letters
	Digits
	Unrecognized
)

var lexKindNames = map[LexKind]string{
	LeftAngleBracket:   "LeftAngleBracket",
	RightAngleBracket:  "RightAngleBracket",
	LeftSquareBracket:  "LeftSquareBracket",
	RightSquareBracket: "RightSquareBracket",
	QuestionMark:       "QuestionMark",
	ExclamationPoint:   "ExclamationPoint",
	Dash:               "Dash",
	SingleQuote:        "SingleQuote",
	DoubleQuote:        "DoubleQuote",
	Equals:             "Equals",
	Underscore:         "Underscore",
	Period:             "Period",
	Colon:              "Colon",
	Semicolon:          "Semicolon",
	Ampersand:          "Ampersand",
	ForwardSlash:       "ForwardSlash",
	Whitespace:         "Whitespace",
	NewLine:            "NewLine",
	Letters:            "Letters",
	Digits:             "Digits",
	Unrecognized:       "Unrecognized",
}

// String implements Stringer for LexKind.
func (k LexKind) String() string {
	if name, ok := lexKindNames[k]; ok {
		return name
	}
	return "LexKind(?)"
}

// Lex is a single lexical unit with a byte-accurate offset.
type Lex struct {
	Text       string
	StartIndex int
	Kind       LexKind
}

// Length returns len(Text) in code units, matching spec.md's
// code-unit-indexed offsets (§6).
func (l Lex) Length() int {
	return len(l.Text)
}

// AfterEndIndex is StartIndex + Length().
func (l Lex) AfterEndIndex() int {
	return l.StartIndex + l.Length()
}

// Span returns the half-open range covered by this lex.
func (l Lex) Span() Span {
	return Span{Start: l.StartIndex, Length: l.Length()}
}

// String returns the verbatim source text of the lex, so that
// concatenating a run of lexes reproduces the original bytes.
func (l Lex) String() string {
	return l.Text
}

// ContainsIndex reports whether i falls inside this lex, inclusive of
// both endpoints (matching Name/Text segment inclusivity for their
// constituent lexes, per spec.md §4.2's containsIndex policy note).
func (l Lex) ContainsIndex(i int) bool {
	return i >= l.StartIndex && i <= l.AfterEndIndex()
}
