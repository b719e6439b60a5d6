package xmldoc

// readUnrecognizedTag absorbs lexes until '>' or end-of-input,
// treating quote lexes as opening a QuotedString (spec.md §4.2.9).
// pieces already holds whatever lexes were consumed before the
// decision to fall back to this reader.
func (tk *Tokenizer) readUnrecognizedTag(pieces []Segment) *UnrecognizedTag {
	closed := false
	for {
		l, ok := tk.peek()
		if !ok {
			break
		}
		if l.Kind == RightAngleBracket {
			tk.advance()
			pieces = append(pieces, l)
			closed = true
			break
		}
		tk.advance()
		if l.Kind == SingleQuote || l.Kind == DoubleQuote {
			pieces = append(pieces, tk.readQuotedString(l))
		} else {
			pieces = append(pieces, l)
		}
	}
	if !closed {
		report(tk.sink, MsgMissingTagRightAngleBracket, pieces[0].Span())
	}
	return &UnrecognizedTag{tagCore{pieces: pieces, closed: closed}}
}

// readQuestionDispatch handles what follows "<?" (spec.md §4.2, tag
// dispatch's QuestionMark bullet).
func (tk *Tokenizer) readQuestionDispatch(lt, qm Lex) Segment {
	l, ok := tk.peek()
	if ok && isNameStart(l.Kind) {
		name := tk.readName()
		if name.Text() == "xml" {
			return tk.readDeclaration(lt, qm, name)
		}
		return tk.readProcessingInstruction(lt, qm, name)
	}
	if ok {
		report(tk.sink, MsgExpectedDeclarationOrProcessingInstructionName, l.Span())
	} else {
		report(tk.sink, MsgMissingDeclarationOrProcessingInstructionName, qm.Span())
	}
	return tk.readUnrecognizedTag([]Segment{lt, qm})
}

// readExclamationDispatch handles what follows "<!" (spec.md §4.2, tag
// dispatch's ExclamationPoint bullet).
func (tk *Tokenizer) readExclamationDispatch(lt, em Lex) Segment {
	l, ok := tk.peek()
	switch {
	case ok && isNameStart(l.Kind):
		name := tk.readName()
		if name.Text() == "DOCTYPE" {
			return tk.readDOCTYPE(lt, em, name)
		}
		report(tk.sink, MsgExpectedDOCTYPENameCommentDashesOrCDATALeftSquareBracket, name.Span())
		pieces := []Segment{lt, em, name}
		return tk.readUnrecognizedTag(pieces)
	case ok && l.Kind == Dash:
		tk.advance()
		return tk.readComment(lt, em, l)
	case ok && l.Kind == LeftSquareBracket:
		tk.advance()
		return tk.readCDATA(lt, em, l)
	case ok:
		report(tk.sink, MsgExpectedDOCTYPENameCommentDashesOrCDATALeftSquareBracket, l.Span())
		return tk.readUnrecognizedTag([]Segment{lt, em})
	default:
		return tk.readUnrecognizedTag([]Segment{lt, em})
	}
}

// readDeclaration reads "<?xml" version [encoding] [standalone] "?>"
// with ordered, gracefully-recovering attribute checks (spec.md
// §4.2.2). Per the Open Question recorded in DESIGN.md, any Attribute
// children actually produced — including ones the ordering checks
// rejected — remain visible via Declaration.Attributes().
func (tk *Tokenizer) readDeclaration(lt, qm Lex, name *NameSegment) Segment {
	pieces := []Segment{lt, qm, name}

	absorbWhitespace := func() {
		for {
			l, ok := tk.peek()
			if !ok || (l.Kind != Whitespace && l.Kind != NewLine) {
				return
			}
			tk.advance()
			pieces = append(pieces, l)
		}
	}

	readNextAttribute := func() *Attribute {
		absorbWhitespace()
		l, ok := tk.peek()
		if !ok || !isNameStart(l.Kind) {
			return nil
		}
		return tk.readAttribute()
	}

	version := readNextAttribute()
	if version == nil {
		l, ok := tk.peek()
		if ok {
			report(tk.sink, MsgExpectedDeclarationVersionAttribute, l.Span())
		} else {
			report(tk.sink, MsgMissingDeclarationVersionAttribute, qm.Span())
		}
	} else {
		pieces = append(pieces, version)
		if !Matches(version.NameText(), "version") {
			report(tk.sink, MsgExpectedDeclarationVersionAttribute, version.Name().Span())
		} else if version.Value() == nil || version.Value().UnquotedString() != "1.0" {
			report(tk.sink, MsgInvalidDeclarationVersionAttributeValue, version.Span())
		}
	}

	second := readNextAttribute()
	secondIsStandalone := false
	if second != nil {
		pieces = append(pieces, second)
		switch {
		case Matches(second.NameText(), "encoding"):
		case Matches(second.NameText(), "standalone"):
			secondIsStandalone = true
			if second.Value() == nil || !isYesNo(second.Value().UnquotedString()) {
				report(tk.sink, MsgInvalidDeclarationStandaloneAttributeValue, second.Span())
			}
		default:
			report(tk.sink, MsgExpectedDeclarationEncodingOrStandaloneAttribute, second.Name().Span())
		}
	}

	if second != nil && !secondIsStandalone {
		third := readNextAttribute()
		if third != nil {
			pieces = append(pieces, third)
			if !Matches(third.NameText(), "standalone") {
				report(tk.sink, MsgExpectedDeclarationEncodingOrStandaloneAttributeOrRightQuestionMark, third.Name().Span())
			} else if third.Value() == nil || !isYesNo(third.Value().UnquotedString()) {
				report(tk.sink, MsgInvalidDeclarationStandaloneAttributeValue, third.Span())
			}
		}
	}

	absorbWhitespace()

	closed := false
terminator:
	for {
		l, ok := tk.peek()
		if !ok {
			report(tk.sink, MsgMissingDeclarationRightQuestionMark, qm.Span())
			break terminator
		}
		if l.Kind != QuestionMark {
			tk.advance()
			report(tk.sink, MsgExpectedDeclarationRightQuestionMark, l.Span())
			pieces = append(pieces, l)
			continue terminator
		}
		tk.advance()
		pieces = append(pieces, l)
		for {
			l2, ok2 := tk.peek()
			if !ok2 {
				report(tk.sink, MsgMissingDeclarationRightAngleBracket, qm.Span())
				break terminator
			}
			if l2.Kind == RightAngleBracket {
				tk.advance()
				pieces = append(pieces, l2)
				closed = true
				break terminator
			}
			tk.advance()
			report(tk.sink, MsgExpectedDeclarationRightAngleBracket, l2.Span())
			pieces = append(pieces, l2)
		}
	}

	return &Declaration{tagCore: tagCore{pieces: pieces, closed: closed}}
}

func isYesNo(s string) bool { return s == "yes" || s == "no" }

// readProcessingInstruction reads "<?" Name ... "?>" with opaque
// content (spec.md §4.2.3).
func (tk *Tokenizer) readProcessingInstruction(lt, qm Lex, name *NameSegment) *ProcessingInstruction {
	pieces := []Segment{lt, qm, name}
	closed := false
loop:
	for {
		l, ok := tk.peek()
		if !ok {
			report(tk.sink, MsgMissingProcessingInstructionRightQuestionMark, qm.Span())
			break loop
		}
		if l.Kind == RightAngleBracket {
			tk.advance()
			report(tk.sink, MsgExpectedProcessingInstructionRightQuestionMark, l.Span())
			pieces = append(pieces, l)
			continue loop
		}
		if l.Kind != QuestionMark {
			tk.advance()
			pieces = append(pieces, l)
			continue loop
		}
		tk.advance()
		pieces = append(pieces, l)
		l2, ok2 := tk.peek()
		if !ok2 {
			report(tk.sink, MsgMissingProcessingInstructionRightAngleBracket, qm.Span())
			break loop
		}
		if l2.Kind == RightAngleBracket {
			tk.advance()
			pieces = append(pieces, l2)
			closed = true
			break loop
		}
	}
	return &ProcessingInstruction{tagCore: tagCore{pieces: pieces, closed: closed}, Name: name}
}

// readComment reads "<!--" ... "-->" verbatim (spec.md §4.2.6), having
// already consumed the first dash.
func (tk *Tokenizer) readComment(lt, em, dash1 Lex) Segment {
	pieces := []Segment{lt, em, dash1}
	l, ok := tk.peek()
	if !ok || l.Kind != Dash {
		if ok {
			report(tk.sink, MsgExpectedCommentSecondStartDash, l.Span())
		} else {
			report(tk.sink, MsgMissingCommentSecondStartDash, dash1.Span())
		}
		return tk.readUnrecognizedTag(pieces)
	}
	tk.advance()
	pieces = append(pieces, l)

	dashRun := 0
	closed := false
loop:
	for {
		l, ok := tk.peek()
		if !ok {
			switch {
			case dashRun >= 2:
				report(tk.sink, MsgMissingCommentRightAngleBracket, lt.Span())
			case dashRun == 1:
				report(tk.sink, MsgMissingCommentSecondClosingDash, lt.Span())
			default:
				report(tk.sink, MsgMissingCommentClosingDashes, lt.Span())
			}
			break loop
		}
		tk.advance()
		pieces = append(pieces, l)
		switch {
		case l.Kind == Dash:
			if dashRun < 2 {
				dashRun++
			}
		case l.Kind == RightAngleBracket && dashRun >= 2:
			closed = true
			break loop
		default:
			dashRun = 0
		}
	}
	return &Comment{tagCore{pieces: pieces, closed: closed}}
}

// readCDATA reads "<![CDATA[" ... "]]>" verbatim (spec.md §4.2.7),
// having already consumed the first '['.
func (tk *Tokenizer) readCDATA(lt, em, bracket1 Lex) Segment {
	pieces := []Segment{lt, em, bracket1}

	// The primitive iterator coalesces consecutive letters into one
	// Letters lex, so "CDATA" arrives as a single lex to match against.
	l, ok := tk.peek()
	switch {
	case !ok:
		report(tk.sink, MsgMissingCDATAName, bracket1.Span())
		return tk.readUnrecognizedTag(pieces)
	case l.Kind != Letters || l.Text != "CDATA":
		report(tk.sink, MsgExpectedCDATAName, l.Span())
		return tk.readUnrecognizedTag(pieces)
	}
	tk.advance()
	pieces = append(pieces, l)

	l, ok = tk.peek()
	if !ok || l.Kind != LeftSquareBracket {
		if ok {
			report(tk.sink, MsgExpectedCDATASecondLeftSquareBracket, l.Span())
		} else {
			report(tk.sink, MsgMissingCDATASecondLeftSquareBracket, bracket1.Span())
		}
		return tk.readUnrecognizedTag(pieces)
	}
	tk.advance()
	pieces = append(pieces, l)

	bracketRun := 0
	closed := false
loop:
	for {
		l, ok := tk.peek()
		if !ok {
			break loop
		}
		tk.advance()
		pieces = append(pieces, l)
		switch {
		case l.Kind == RightSquareBracket:
			if bracketRun < 2 {
				bracketRun++
			}
		case l.Kind == RightAngleBracket && bracketRun >= 2:
			closed = true
			break loop
		default:
			bracketRun = 0
		}
	}
	return &CDATA{tagCore{pieces: pieces, closed: closed}}
}

// readDOCTYPE reads "<!DOCTYPE" Name [ExternalId] [InternalDefinition]
// ">" (spec.md §4.2.5), having already consumed the DOCTYPE name.
func (tk *Tokenizer) readDOCTYPE(lt, em Lex, doctypeName *NameSegment) Segment {
	pieces := []Segment{lt, em, doctypeName}

	absorbWhitespace := func() bool {
		found := false
		for {
			l, ok := tk.peek()
			if !ok || (l.Kind != Whitespace && l.Kind != NewLine) {
				return found
			}
			tk.advance()
			pieces = append(pieces, l)
			found = true
		}
	}

	absorbWhitespace()

	var rootName *NameSegment
	l, ok := tk.peek()
	switch {
	case ok && isNameStart(l.Kind):
		rootName = tk.readName()
		pieces = append(pieces, rootName)
	case ok:
		report(tk.sink, MsgExpectedDOCTYPERootElementName, l.Span())
	default:
		report(tk.sink, MsgMissingDOCTYPERootElementName, doctypeName.Span())
	}

	var publicID, systemID *QuotedString

	hadWS := absorbWhitespace()
	if l, ok := tk.peek(); ok && hadWS && l.Kind == Letters && (l.Text == "PUBLIC" || l.Text == "SYSTEM") {
		tk.advance()
		keyword := l
		pieces = append(pieces, keyword)
		isPublic := keyword.Text == "PUBLIC"

		absorbWhitespace()
		if l2, ok2 := tk.peek(); ok2 && (l2.Kind == SingleQuote || l2.Kind == DoubleQuote) {
			tk.advance()
			firstID := tk.readQuotedString(l2)
			pieces = append(pieces, firstID)
			if isPublic {
				publicID = firstID
			} else {
				systemID = firstID
			}
		} else {
			if isPublic {
				if ok2 {
					report(tk.sink, MsgExpectedDOCTYPEPublicIdentifier, l2.Span())
				} else {
					report(tk.sink, MsgMissingDOCTYPEPublicIdentifier, keyword.Span())
				}
			} else {
				if ok2 {
					report(tk.sink, MsgExpectedDOCTYPESystemIdentifier, l2.Span())
				} else {
					report(tk.sink, MsgMissingDOCTYPESystemIdentifier, keyword.Span())
				}
			}
		}

		if isPublic {
			absorbWhitespace()
			if l2, ok2 := tk.peek(); ok2 && (l2.Kind == SingleQuote || l2.Kind == DoubleQuote) {
				tk.advance()
				systemID = tk.readQuotedString(l2)
				pieces = append(pieces, systemID)
			} else if ok2 {
				report(tk.sink, MsgExpectedDOCTYPESystemIdentifier, l2.Span())
			} else {
				report(tk.sink, MsgMissingDOCTYPESystemIdentifier, keyword.Span())
			}
		}
	} else if ok && l.Kind == Letters {
		report(tk.sink, MsgInvalidDOCTYPEExternalIdType, l.Span())
	}

	absorbWhitespace()

	var internal *InternalDefinition
	if l, ok := tk.peek(); ok && l.Kind == LeftSquareBracket {
		tk.advance()
		internalPieces := []Segment{l}
		internalClosed := false
		for {
			l2, ok2 := tk.peek()
			if !ok2 {
				report(tk.sink, MsgMissingInternalDefinitionRightSquareBracket, l.Span())
				break
			}
			tk.advance()
			internalPieces = append(internalPieces, l2)
			if l2.Kind == RightSquareBracket {
				internalClosed = true
				break
			}
		}
		internal = &InternalDefinition{pieces: internalPieces, closed: internalClosed}
		pieces = append(pieces, internal)
	}

	absorbWhitespace()

	closed := false
	if l, ok := tk.peek(); ok && l.Kind == RightAngleBracket {
		tk.advance()
		pieces = append(pieces, l)
		closed = true
	} else if ok {
		tk.advance()
		report(tk.sink, MsgExpectedDOCTYPERightAngleBracket, l.Span())
		pieces = append(pieces, l)
		for {
			l2, ok2 := tk.peek()
			if !ok2 {
				report(tk.sink, MsgMissingDOCTYPERightAngleBracket, lt.Span())
				break
			}
			tk.advance()
			pieces = append(pieces, l2)
			if l2.Kind == RightAngleBracket {
				closed = true
				break
			}
			report(tk.sink, MsgExpectedDOCTYPERightAngleBracket, l2.Span())
		}
	} else {
		report(tk.sink, MsgMissingDOCTYPERightAngleBracket, lt.Span())
	}

	return &DOCTYPE{
		tagCore:  tagCore{pieces: pieces, closed: closed},
		RootName: rootName,
		PublicID: publicID,
		SystemID: systemID,
		Internal: internal,
	}
}
