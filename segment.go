package xmldoc

import "strings"

// SegmentKind tags every variant in the parse tree (spec.md §3, §9:
// "implement as a tagged variant, not an inheritance hierarchy").
type SegmentKind int

const (
	KindLex SegmentKind = iota
	KindName
	KindQuotedString
	KindAttribute
	KindInternalDefinition
	KindStartTag
	KindEmptyElement
	KindEndTag
	KindUnrecognizedTag
	KindDeclaration
	KindProcessingInstruction
	KindComment
	KindCDATA
	KindDOCTYPE
	KindText
	KindElement
)

// Segment is any node in the parse tree: a bare Lex, a compound of
// lexes (Name, QuotedString, Attribute, InternalDefinition, Text), a
// Tag variant, or an Element. Every segment can report its own span,
// reconstruct its verbatim source text, and answer containment
// queries whose inclusivity rule is variant-specific (spec.md §3, §4).
type Segment interface {
	Kind() SegmentKind
	Span() Span
	String() string
	ContainsIndex(i int) bool
}

// Kind implements Segment for a bare Lex: a standalone newline at the
// start of a segment is classified as a Lex, not wrapped in a Text
// segment (spec.md §4.2 state 1).
func (l Lex) Kind() SegmentKind { return KindLex }

func spanFromSegments(pieces []Segment) Span {
	if len(pieces) == 0 {
		return Span{}
	}
	first := pieces[0].Span()
	last := pieces[len(pieces)-1].Span()
	return Span{Start: first.Start, Length: last.AfterEnd() - first.Start}
}

func stringFromSegments(pieces []Segment) string {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.String())
	}
	return b.String()
}

func lexesToSegments(lexes []Lex) []Segment {
	out := make([]Segment, len(lexes))
	for i, l := range lexes {
		out[i] = l
	}
	return out
}

// NameSegment is one or more Letters|Digits|Period|Dash|Underscore|Colon
// lexes, the first of which must be Letters|Underscore|Colon.
type NameSegment struct {
	pieces []Segment
}

func newNameSegment(lexes []Lex) *NameSegment {
	return &NameSegment{pieces: lexesToSegments(lexes)}
}

func (n *NameSegment) Kind() SegmentKind { return KindName }
func (n *NameSegment) Span() Span        { return spanFromSegments(n.pieces) }
func (n *NameSegment) String() string    { return stringFromSegments(n.pieces) }

// ContainsIndex is inclusive on both ends for Name segments
// (spec.md §4.2's containsIndex policy note).
func (n *NameSegment) ContainsIndex(i int) bool {
	sp := n.Span()
	return i >= sp.Start && i <= sp.AfterEnd()
}

// Text returns the name's verbatim text (an alias for String, named to
// match the data-model field in spec.md §3).
func (n *NameSegment) Text() string { return n.String() }

// QuotedString begins with a SingleQuote or DoubleQuote lex; it may or
// may not end with a matching closing quote, and its content may be
// empty.
type QuotedString struct {
	startQuote Lex
	content    []Lex
	endQuote   *Lex
}

func (q *QuotedString) Kind() SegmentKind { return KindQuotedString }

func (q *QuotedString) pieces() []Segment {
	out := make([]Segment, 0, len(q.content)+2)
	out = append(out, q.startQuote)
	out = append(out, lexesToSegments(q.content)...)
	if q.endQuote != nil {
		out = append(out, *q.endQuote)
	}
	return out
}

func (q *QuotedString) Span() Span     { return spanFromSegments(q.pieces()) }
func (q *QuotedString) String() string { return stringFromSegments(q.pieces()) }

// ContainsIndex excludes the end quote when present (spec.md §4.2).
func (q *QuotedString) ContainsIndex(i int) bool {
	sp := q.Span()
	if q.endQuote != nil {
		return i >= sp.Start && i < q.endQuote.StartIndex
	}
	return i >= sp.Start && i < sp.AfterEnd()
}

// StartQuote returns the opening quote lex.
func (q *QuotedString) StartQuote() Lex { return q.startQuote }

// HasEndQuote reports whether a matching closing quote was found.
func (q *QuotedString) HasEndQuote() bool { return q.endQuote != nil }

// UnquotedString returns the content between the quotes.
func (q *QuotedString) UnquotedString() string {
	var b strings.Builder
	for _, l := range q.content {
		b.WriteString(l.Text)
	}
	return b.String()
}

// UnquotedLexes returns the lexes between the quotes.
func (q *QuotedString) UnquotedLexes() []Lex {
	out := make([]Lex, len(q.content))
	copy(out, q.content)
	return out
}

// Attribute reads as "name [ws] [= [ws] quoted-string]" (spec.md
// §4.2.8). Shape is name-only, name+trailing-whitespace (no '='), or
// name=value; Equals and Value may be absent under the recovery rules
// documented on the tokenizer.
type Attribute struct {
	name                  *NameSegment
	whitespaceAfterName   *Lex
	equals                *Lex
	whitespaceAfterEquals *Lex
	value                 *QuotedString
}

func (a *Attribute) Kind() SegmentKind { return KindAttribute }

func (a *Attribute) pieces() []Segment {
	out := make([]Segment, 0, 5)
	out = append(out, a.name)
	if a.whitespaceAfterName != nil {
		out = append(out, *a.whitespaceAfterName)
	}
	if a.equals != nil {
		out = append(out, *a.equals)
		if a.whitespaceAfterEquals != nil {
			out = append(out, *a.whitespaceAfterEquals)
		}
		if a.value != nil {
			out = append(out, a.value)
		}
	}
	return out
}

func (a *Attribute) Span() Span     { return spanFromSegments(a.pieces()) }
func (a *Attribute) String() string { return stringFromSegments(a.pieces()) }

// ContainsIndex uses the standard half-open rule: the composition
// above already excludes any whitespace that follows the attribute's
// value (that whitespace is a sibling tag child, not an Attribute
// piece), which is the exclusion spec.md §4.2 calls out explicitly.
func (a *Attribute) ContainsIndex(i int) bool {
	return a.Span().Contains(i)
}

// Name returns the attribute's name segment.
func (a *Attribute) Name() *NameSegment { return a.name }

// NameText is a convenience for Name().Text().
func (a *Attribute) NameText() string { return a.name.Text() }

// HasEquals reports whether an '=' was read for this attribute.
func (a *Attribute) HasEquals() bool { return a.equals != nil }

// Value returns the attribute's quoted value, or nil if absent.
func (a *Attribute) Value() *QuotedString { return a.value }

// hasTrailingWhitespace reports whether this attribute absorbed a
// whitespace/newline run after its name with no following '=' (the
// "name + whitespace" shape). Used by the start-tag reader to decide
// whether two adjacent attributes had intervening whitespace.
func (a *Attribute) hasTrailingWhitespace() bool {
	return a.equals == nil && a.whitespaceAfterName != nil
}

// InternalDefinition captures a DOCTYPE internal subset verbatim:
// LeftSquareBracket ... RightSquareBracket?
type InternalDefinition struct {
	pieces []Segment
	closed bool
}

func (d *InternalDefinition) Kind() SegmentKind { return KindInternalDefinition }
func (d *InternalDefinition) Span() Span        { return spanFromSegments(d.pieces) }
func (d *InternalDefinition) String() string    { return stringFromSegments(d.pieces) }

func (d *InternalDefinition) ContainsIndex(i int) bool {
	sp := d.Span()
	if d.closed {
		return i > sp.Start && i < sp.AfterEnd()
	}
	return i > sp.Start
}

// TextSegment is one or more non-LeftAngleBracket non-NewLine lexes.
type TextSegment struct {
	pieces []Segment
}

func newTextSegment(lexes []Lex) *TextSegment {
	return &TextSegment{pieces: lexesToSegments(lexes)}
}

func (t *TextSegment) Kind() SegmentKind { return KindText }
func (t *TextSegment) Span() Span        { return spanFromSegments(t.pieces) }
func (t *TextSegment) String() string    { return stringFromSegments(t.pieces) }

// ContainsIndex is inclusive on both ends, matching Name.
func (t *TextSegment) ContainsIndex(i int) bool {
	sp := t.Span()
	return i >= sp.Start && i <= sp.AfterEnd()
}

// IsWhitespace reports whether every lex in this Text segment is
// Whitespace or NewLine.
func (t *TextSegment) IsWhitespace() bool {
	_, ok := t.NonWhitespaceSpan()
	return !ok
}

// NonWhitespaceSpan returns the tightest span covering this segment's
// non-whitespace lexes, or ok=false if the segment is all whitespace.
func (t *TextSegment) NonWhitespaceSpan() (span Span, ok bool) {
	first := -1
	last := -1
	for i, p := range t.pieces {
		lex := p.(Lex)
		if lex.Kind == Whitespace || lex.Kind == NewLine {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 {
		return Span{}, false
	}
	firstSpan := t.pieces[first].Span()
	lastSpan := t.pieces[last].Span()
	return Span{Start: firstSpan.Start, Length: lastSpan.AfterEnd() - firstSpan.Start}, true
}

// TrimmedString returns this Text segment's content with leading and
// trailing whitespace lexes removed, used when inlining a lone text
// child during formatting (spec.md §4.6, §8 scenario 2).
func (t *TextSegment) TrimmedString() string {
	first := -1
	last := -1
	for i, p := range t.pieces {
		lex := p.(Lex)
		if lex.Kind == Whitespace || lex.Kind == NewLine {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 {
		return ""
	}
	var b strings.Builder
	for i := first; i <= last; i++ {
		b.WriteString(t.pieces[i].String())
	}
	return b.String()
}
