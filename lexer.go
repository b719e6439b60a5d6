package xmldoc

import "strings"

// Lexer reshapes the primitive character-class stream into XML-specific
// lexemes (Component B, spec.md §4.1). It is stateless beyond the
// underlying charClassIterator: Space, Tab, and CarriageReturn (and
// runs thereof) coalesce into a single Whitespace lex, terminated by a
// NewLine; every other primitive kind maps one-to-one to a Lex kind,
// preserving offsets and text. Unclassifiable runes become
// Unrecognized lexes; the Lexer never fails.
type Lexer struct {
	prim *charClassIterator
	tier sizeTier
}

// NewLexer returns a Lexer over input. The returned Lexer produces
// Lex values with strictly increasing StartIndex via Next.
func NewLexer(input string) *Lexer {
	return &Lexer{prim: newCharClassIterator(input), tier: tierFor(len(input))}
}

var primToLexKind = map[charClassKind]LexKind{
	ccLeftAngleBracket:  LeftAngleBracket,
	ccRightAngleBracket: RightAngleBracket,
	ccLeftSquareBracket: LeftSquareBracket,
	ccRightSquareBracket: RightSquareBracket,
	ccQuestionMark:      QuestionMark,
	ccExclamationPoint:  ExclamationPoint,
	ccDash:              Dash,
	ccSingleQuote:       SingleQuote,
	ccDoubleQuote:       DoubleQuote,
	ccEquals:            Equals,
	ccUnderscore:        Underscore,
	ccPeriod:            Period,
	ccColon:             Colon,
	ccSemicolon:         Semicolon,
	ccAmpersand:         Ampersand,
	ccForwardSlash:      ForwardSlash,
	ccNewLine:           NewLine,
	ccLetters:           Letters,
	ccDigits:            Digits,
	ccUnrecognized:      Unrecognized,
}

// Next returns the next Lex, or ok=false at end of input.
func (lx *Lexer) Next() (Lex, bool) {
	unit, ok := lx.prim.next()
	if !ok {
		return Lex{}, false
	}

	switch unit.kind {
	case ccSpace, ccTab, ccCarriageReturn:
		return lx.coalesceWhitespace(unit), true
	default:
		kind, known := primToLexKind[unit.kind]
		if !known {
			kind = Unrecognized
		}
		return Lex{Text: unit.text, StartIndex: unit.start, Kind: kind}, true
	}
}

// coalesceWhitespace absorbs further Space/Tab/CarriageReturn primitive
// units into one Whitespace lex; a NewLine terminates the run without
// being consumed.
func (lx *Lexer) coalesceWhitespace(first charClassUnit) Lex {
	var b strings.Builder
	b.WriteString(first.text)
	start := first.start

	for {
		savedPos := lx.prim.pos
		unit, ok := lx.prim.next()
		if !ok {
			break
		}
		if unit.kind != ccSpace && unit.kind != ccTab && unit.kind != ccCarriageReturn {
			lx.prim.pos = savedPos
			break
		}
		b.WriteString(unit.text)
	}

	return Lex{Text: b.String(), StartIndex: start, Kind: Whitespace}
}

// Collect drains the Lexer into a slice; a convenience wrapper over the
// stepped Next() iterator (spec.md §9's note that async/lazy sequences
// are unnecessary), mirroring the teacher's TokenizeToSlice.
func (lx *Lexer) Collect() []Lex {
	out := make([]Lex, 0, lx.tier.capacityHint())
	for {
		l, ok := lx.Next()
		if !ok {
			return out
		}
		out = append(out, l)
	}
}
