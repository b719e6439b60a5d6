package xmldoc

// Document is the result of a full parse: a flat, ordered list of
// top-level segments (with Elements replacing their
// StartTag…EndTag span) plus the issues accumulated along the way
// (Component E, spec.md §4.5).
type Document struct {
	Segments []Segment
	Issues   []Issue
}

// buildDocument runs the element builder over the entire segment
// stream and enforces root-level well-formedness (spec.md §4.5's
// rule table).
func buildDocument(input string) Document {
	sink := &IssueSlice{}
	tk := NewTokenizer(input, sink)
	eb := NewElementBuilder(tk, sink)

	var segments []Segment
	sawDeclaration := false
	sawDOCTYPE := false
	sawRoot := false
	sawNonWhitespace := false

	for {
		seg, ok := eb.Next()
		if !ok {
			break
		}
		segments = append(segments, seg)
		isFirst := len(segments) == 1
		if !isWhitespaceOnlySegment(seg) {
			sawNonWhitespace = true
		}

		switch s := seg.(type) {
		case *Declaration:
			switch {
			case sawDeclaration:
				report(sink, MsgDocumentCanHaveOneDeclaration, s.Span())
			case !isFirst:
				report(sink, MsgDocumentDeclarationMustBeFirstSegment, s.Span())
			}
			sawDeclaration = true
		case *DOCTYPE:
			if !sawDeclaration {
				report(sink, MsgDocumentDOCTYPEMustBeAfterDeclaration, s.Span())
			}
			if sawDOCTYPE {
				report(sink, MsgDocumentCanHaveOneDOCTYPE, s.Span())
			}
			sawDOCTYPE = true
		case *Element:
			if sawRoot {
				report(sink, MsgDocumentCanHaveOneRootElement, s.Span())
			}
			sawRoot = true
		case *EmptyElement:
			if sawRoot {
				report(sink, MsgDocumentCanHaveOneRootElement, s.Span())
			}
			sawRoot = true
		case *TextSegment:
			if !s.IsWhitespace() {
				nws, _ := s.NonWhitespaceSpan()
				report(sink, MsgDocumentCannotHaveTextAtRootLevel, nws)
			}
		case *CDATA:
			report(sink, MsgDocumentCannotHaveCDATAAtRootLevel, s.Span())
		}
	}

	if !sawNonWhitespace {
		report(sink, MsgMissingDocumentRootElement, Span{0, 0})
	}

	return Document{Segments: segments, Issues: sink.Issues}
}

// isWhitespaceOnlySegment reports whether seg contributes no
// non-whitespace content: a whitespace-only Text segment, or a bare
// NewLine Lex. Everything else (including an unmatched EndTag) counts
// as non-whitespace content, per spec.md §8's boundary behavior that
// missingDocumentRootElement fires only when the input has no
// non-whitespace at all.
func isWhitespaceOnlySegment(seg Segment) bool {
	switch s := seg.(type) {
	case *TextSegment:
		return s.IsWhitespace()
	case Lex:
		return s.Kind == NewLine
	default:
		return false
	}
}

// Prolog returns the longest prefix of Segments consisting solely of
// Declaration, DOCTYPE, ProcessingInstruction, Comment, whitespace-only
// Text, or bare NewLine lexes, and whether that prefix is non-empty
// (spec.md §4.5).
func (d Document) Prolog() ([]Segment, bool) {
	var prefix []Segment
	for _, seg := range d.Segments {
		if !isPrologSegment(seg) {
			break
		}
		prefix = append(prefix, seg)
	}
	return prefix, len(prefix) > 0
}

func isPrologSegment(seg Segment) bool {
	switch s := seg.(type) {
	case *Declaration, *DOCTYPE, *ProcessingInstruction, *Comment:
		return true
	case *TextSegment:
		return s.IsWhitespace()
	case Lex:
		return s.Kind == NewLine
	default:
		return false
	}
}

// Declaration returns the document's declaration, or nil.
func (d Document) Declaration() *Declaration {
	for _, seg := range d.Segments {
		if decl, ok := seg.(*Declaration); ok {
			return decl
		}
	}
	return nil
}

// DOCTYPE returns the document's DOCTYPE, or nil.
func (d Document) DOCTYPE() *DOCTYPE {
	for _, seg := range d.Segments {
		if dt, ok := seg.(*DOCTYPE); ok {
			return dt
		}
	}
	return nil
}

// Root returns the document's root element. A bare EmptyElement root
// is wrapped in an *Element with no children and no end tag so callers
// have one type to work with.
func (d Document) Root() *Element {
	for _, seg := range d.Segments {
		switch s := seg.(type) {
		case *Element:
			return s
		case *EmptyElement:
			return &Element{StartTag: &StartTag{tagCore: s.tagCore, Name: s.Name, Attributes: s.Attributes}}
		}
	}
	return nil
}

// String reconstructs the original input verbatim by concatenating
// every top-level segment (spec.md §8's round-trip property).
func (d Document) String() string {
	s := ""
	for _, seg := range d.Segments {
		s += seg.String()
	}
	return s
}

// Parse runs components B–E to completion over text and returns the
// resulting Document (spec.md §6's parse(text) entry point).
func Parse(text string) Document {
	return buildDocument(text)
}
