package xmldoc

// Tokenizer is the recursive-descent state machine (Component C,
// spec.md §4.2) that turns a Lex stream into one Segment per call to
// Next. It never fails: malformed shapes report an Issue to the
// optional sink and still produce a structurally complete segment, so
// a caller can always continue.
type Tokenizer struct {
	lx       *Lexer
	sink     IssueSink
	buffered *Lex
	tier     sizeTier
}

// NewTokenizer returns a Tokenizer reading from input. sink may be nil,
// in which case diagnostics are discarded.
func NewTokenizer(input string, sink IssueSink) *Tokenizer {
	return &Tokenizer{lx: NewLexer(input), sink: sink, tier: tierFor(len(input))}
}

func (tk *Tokenizer) peek() (Lex, bool) {
	if tk.buffered == nil {
		l, ok := tk.lx.Next()
		if !ok {
			return Lex{}, false
		}
		tk.buffered = &l
	}
	return *tk.buffered, true
}

func (tk *Tokenizer) advance() (Lex, bool) {
	if tk.buffered != nil {
		l := *tk.buffered
		tk.buffered = nil
		return l, true
	}
	return tk.lx.Next()
}

// Next consumes lexes and returns exactly one Segment, or ok=false at
// end of input (spec.md §4.2's outer state 1).
func (tk *Tokenizer) Next() (Segment, bool) {
	l, ok := tk.advance()
	if !ok {
		return nil, false
	}
	switch l.Kind {
	case LeftAngleBracket:
		return tk.readTagDispatch(l), true
	case NewLine:
		return l, true
	default:
		return tk.readText(l), true
	}
}

// Collect drains the Tokenizer into a slice, mirroring Lexer.Collect
// (spec.md §9's note that a stepped iterator, not a lazy sequence, is
// all that's needed).
func (tk *Tokenizer) Collect() []Segment {
	out := make([]Segment, 0, tk.tier.capacityHint())
	for {
		s, ok := tk.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// readText absorbs lexes until the next '<', NewLine, or end-of-input
// (spec.md §4.2.4).
func (tk *Tokenizer) readText(first Lex) *TextSegment {
	lexes := []Lex{first}
	for {
		l, ok := tk.peek()
		if !ok || l.Kind == LeftAngleBracket || l.Kind == NewLine {
			break
		}
		tk.advance()
		lexes = append(lexes, l)
	}
	return newTextSegment(lexes)
}

func isNameStart(k LexKind) bool {
	return k == Letters || k == Underscore || k == Colon
}

func isNameContinuation(k LexKind) bool {
	return k == Letters || k == Underscore || k == Colon || k == Digits || k == Period || k == Dash
}

// readName consumes a run of name-constituent lexes. The caller must
// already know (via peek) that the next lex is a valid name start;
// readName returns nil only if that turns out not to hold.
func (tk *Tokenizer) readName() *NameSegment {
	var lexes []Lex
	for {
		l, ok := tk.peek()
		if !ok {
			break
		}
		if len(lexes) == 0 {
			if !isNameStart(l.Kind) {
				break
			}
		} else if !isNameContinuation(l.Kind) {
			break
		}
		tk.advance()
		lexes = append(lexes, l)
	}
	if len(lexes) == 0 {
		return nil
	}
	return newNameSegment(lexes)
}

// readQuotedString consumes content lexes up to and including a
// matching closing quote, or to end-of-input (spec.md §3).
func (tk *Tokenizer) readQuotedString(startQuote Lex) *QuotedString {
	q := &QuotedString{startQuote: startQuote}
	for {
		l, ok := tk.peek()
		if !ok {
			report(tk.sink, MsgMissingQuotedStringEndQuote, startQuote.Span())
			return q
		}
		if l.Kind == startQuote.Kind {
			tk.advance()
			q.endQuote = &l
			return q
		}
		tk.advance()
		q.content = append(q.content, l)
	}
}

// readAttribute reads "name [ws] [= [ws] quoted-string]" (spec.md
// §4.2.8). The caller must already know the next lex is a name start.
func (tk *Tokenizer) readAttribute() *Attribute {
	name := tk.readName()
	attr := &Attribute{name: name}

	l, ok := tk.peek()
	if !ok {
		report(tk.sink, MsgMissingAttributeEqualsSign, name.Span())
		return attr
	}
	if l.Kind == Whitespace || l.Kind == NewLine {
		tk.advance()
		attr.whitespaceAfterName = &l
		l, ok = tk.peek()
		if !ok {
			report(tk.sink, MsgMissingAttributeEqualsSign, name.Span())
			return attr
		}
	}
	if l.Kind != Equals {
		report(tk.sink, MsgExpectedAttributeEqualsSign, l.Span())
		return attr
	}
	tk.advance()
	attr.equals = &l

	l2, ok2 := tk.peek()
	if !ok2 {
		report(tk.sink, MsgMissingAttributeValue, attr.equals.Span())
		return attr
	}
	if l2.Kind == Whitespace || l2.Kind == NewLine {
		tk.advance()
		attr.whitespaceAfterEquals = &l2
		l2, ok2 = tk.peek()
		if !ok2 {
			report(tk.sink, MsgMissingAttributeValue, attr.equals.Span())
			return attr
		}
	}
	if l2.Kind != SingleQuote && l2.Kind != DoubleQuote {
		report(tk.sink, MsgExpectedAttributeValue, l2.Span())
		return attr
	}
	tk.advance()
	attr.value = tk.readQuotedString(l2)
	return attr
}

func lastPiece(pieces []Segment) Segment {
	if len(pieces) == 0 {
		return nil
	}
	return pieces[len(pieces)-1]
}

func expectedAfterNameOrAttributeMsg(pieces []Segment) string {
	if last, ok := lastPiece(pieces).(Lex); ok && (last.Kind == Whitespace || last.Kind == NewLine) {
		return MsgExpectedAttributeNameStartTagRightAngleBracketOrEmptyElementForwardSlash
	}
	return MsgExpectedWhitespaceStartTagRightAngleBracketOrEmptyElementForwardSlash
}

// readStartOrEmptyTag reads a StartTag or EmptyElement, having already
// consumed '<' and confirmed (via peek) that a name follows (spec.md
// §4.2.1).
func (tk *Tokenizer) readStartOrEmptyTag(lt Lex) Segment {
	name := tk.readName()
	pieces := []Segment{lt}
	if name != nil {
		pieces = append(pieces, name)
	}

	closed := false
	isEmpty := false

loop:
	for {
		l, ok := tk.peek()
		if !ok {
			break loop
		}
		switch l.Kind {
		case RightAngleBracket:
			tk.advance()
			pieces = append(pieces, l)
			closed = true
			break loop
		case ForwardSlash:
			tk.advance()
			pieces = append(pieces, l)
			isEmpty = true
			for {
				l2, ok2 := tk.peek()
				if !ok2 {
					break loop
				}
				if l2.Kind == RightAngleBracket {
					tk.advance()
					pieces = append(pieces, l2)
					closed = true
					break loop
				}
				tk.advance()
				report(tk.sink, MsgExpectedEmptyElementRightAngleBracket, l2.Span())
				pieces = append(pieces, l2)
			}
		case Letters, Underscore, Colon:
			prevWasAttrNoGap := false
			if prev, ok := lastPiece(pieces).(*Attribute); ok && !prev.hasTrailingWhitespace() {
				prevWasAttrNoGap = true
			}
			attr := tk.readAttribute()
			if prevWasAttrNoGap {
				report(tk.sink, MsgExpectedWhitespaceBetweenAttributes, attr.Name().Span())
			}
			pieces = append(pieces, attr)
		case Whitespace, NewLine:
			tk.advance()
			pieces = append(pieces, l)
		default:
			tk.advance()
			msg := expectedAfterNameOrAttributeMsg(pieces)
			report(tk.sink, msg, l.Span())
			if l.Kind == SingleQuote || l.Kind == DoubleQuote {
				pieces = append(pieces, tk.readQuotedString(l))
			} else {
				pieces = append(pieces, l)
			}
		}
	}

	if !closed {
		msg := MsgMissingStartTagRightAngleBracket
		if isEmpty {
			msg = MsgMissingEmptyElementRightAngleBracket
		}
		report(tk.sink, msg, lt.Span())
	}

	core := tagCore{pieces: pieces, closed: closed}
	attrs := attributeChildren(pieces)
	if isEmpty {
		return &EmptyElement{tagCore: core, Name: name, Attributes: attrs}
	}
	return &StartTag{tagCore: core, Name: name, Attributes: attrs}
}

// readEndTag reads "</" Name? [ws] ">"? having already consumed '<'
// and '/' (spec.md §4.2.1).
func (tk *Tokenizer) readEndTag(lt, slash Lex) *EndTag {
	pieces := []Segment{lt, slash}

	l, ok := tk.peek()
	var name *NameSegment
	switch {
	case ok && isNameStart(l.Kind):
		name = tk.readName()
		pieces = append(pieces, name)
	case ok:
		report(tk.sink, MsgExpectedEndTagName, l.Span())
	default:
		report(tk.sink, MsgMissingEndTagName, slash.Span())
	}

	closed := false
loop:
	for {
		l, ok := tk.peek()
		if !ok {
			break loop
		}
		switch l.Kind {
		case RightAngleBracket:
			tk.advance()
			pieces = append(pieces, l)
			closed = true
			break loop
		case Whitespace, NewLine:
			tk.advance()
			pieces = append(pieces, l)
		default:
			tk.advance()
			report(tk.sink, MsgExpectedEndTagRightAngleBracket, l.Span())
			pieces = append(pieces, l)
		}
	}
	if !closed {
		report(tk.sink, MsgMissingEndTagRightAngleBracket, lt.Span())
	}

	return &EndTag{tagCore: tagCore{pieces: pieces, closed: closed}, Name: name}
}

// readTagDispatch handles outer state 2 of spec.md §4.2: what follows
// the opening '<'.
func (tk *Tokenizer) readTagDispatch(lt Lex) Segment {
	l, ok := tk.peek()
	if !ok {
		report(tk.sink, MsgMissingNameQuestionMarkExclamationPointOrForwardSlash, lt.Span())
		return tk.readUnrecognizedTag([]Segment{lt})
	}

	switch {
	case isNameStart(l.Kind):
		return tk.readStartOrEmptyTag(lt)
	case l.Kind == QuestionMark:
		tk.advance()
		return tk.readQuestionDispatch(lt, l)
	case l.Kind == ForwardSlash:
		tk.advance()
		return tk.readEndTag(lt, l)
	case l.Kind == ExclamationPoint:
		tk.advance()
		return tk.readExclamationDispatch(lt, l)
	default:
		tk.advance()
		report(tk.sink, MsgExpectedNameQuestionMarkExclamationPointOrForwardSlash, l.Span())
		return tk.readUnrecognizedTag([]Segment{lt, l})
	}
}
