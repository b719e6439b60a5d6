package xmldoc

// tagCore is the shared machinery behind every bracket-delimited
// variant (tags, declarations, comments, CDATA, DOCTYPE): an ordered
// list of child pieces that reconstructs
// the segment's verbatim text, plus whether the segment was properly
// terminated.
//
// containsIndex policy (spec.md §4.2): most of these are closed on the
// right when their terminator is present (start < i < afterEnd);
// without a terminator they are open-ended (start < i). The left
// bound is exclusive for every bracket-delimited variant — sitting
// exactly on the opening delimiter is not "inside" it.
type tagCore struct {
	pieces []Segment
	closed bool
}

func (t *tagCore) Span() Span     { return spanFromSegments(t.pieces) }
func (t *tagCore) String() string { return stringFromSegments(t.pieces) }

func (t *tagCore) ContainsIndex(i int) bool {
	sp := t.Span()
	if t.closed {
		return i > sp.Start && i < sp.AfterEnd()
	}
	return i > sp.Start
}

// StartTag is "<" Name [ws Attribute]* [ws] ">".
type StartTag struct {
	tagCore
	Name       *NameSegment
	Attributes []*Attribute
}

func (t *StartTag) Kind() SegmentKind { return KindStartTag }

// EmptyElement is "<" Name [ws Attribute]* [ws] "/" ">".
type EmptyElement struct {
	tagCore
	Name       *NameSegment
	Attributes []*Attribute
}

func (t *EmptyElement) Kind() SegmentKind { return KindEmptyElement }

// EndTag is "<" "/" Name [ws] ">".
type EndTag struct {
	tagCore
	Name *NameSegment
}

func (t *EndTag) Kind() SegmentKind { return KindEndTag }

// UnrecognizedTag is "<" followed by something other than a
// name-start character, '?', '!' or '/', and also the fallback for a
// "<?" or "<!" tag that no other reader accepts (spec.md §4.2.9).
type UnrecognizedTag struct {
	tagCore
}

func (t *UnrecognizedTag) Kind() SegmentKind { return KindUnrecognizedTag }

// Declaration is "<?xml" version [encoding] [standalone] "?>" — modeled
// as a general attribute-bearing tag rather than three fixed fields,
// per the Open Question decision recorded in DESIGN.md: Version,
// Encoding, and Standalone are convenience lookups, not the
// authoritative source of truth, so every Attribute child the reader
// produced, including one the ordering checks rejected, is visible via
// Attributes(). The reader produces at most three Attribute children;
// any other content before the closing "?>" is kept as raw lexes and
// is not returned by Attributes().
type Declaration struct {
	tagCore
}

func (d *Declaration) Kind() SegmentKind { return KindDeclaration }

// Attributes returns every Attribute child, in document order.
func (d *Declaration) Attributes() []*Attribute {
	return attributeChildren(d.pieces)
}

// Version returns the first attribute named "version", or nil.
func (d *Declaration) Version() *Attribute { return namedAttribute(d.pieces, "version") }

// Encoding returns the first attribute named "encoding", or nil.
func (d *Declaration) Encoding() *Attribute { return namedAttribute(d.pieces, "encoding") }

// Standalone returns the first attribute named "standalone", or nil.
func (d *Declaration) Standalone() *Attribute { return namedAttribute(d.pieces, "standalone") }

func attributeChildren(pieces []Segment) []*Attribute {
	var out []*Attribute
	for _, p := range pieces {
		if a, ok := p.(*Attribute); ok {
			out = append(out, a)
		}
	}
	return out
}

func namedAttribute(pieces []Segment, name string) *Attribute {
	for _, a := range attributeChildren(pieces) {
		if Matches(a.NameText(), name) {
			return a
		}
	}
	return nil
}

// ProcessingInstruction is "<?" Name ... "?>".
type ProcessingInstruction struct {
	tagCore
	Name *NameSegment
}

func (p *ProcessingInstruction) Kind() SegmentKind { return KindProcessingInstruction }

// Comment is "<!--" ... "-->", content preserved verbatim.
type Comment struct {
	tagCore
}

func (c *Comment) Kind() SegmentKind { return KindComment }

// CDATA is "<![CDATA[" ... "]]>", content preserved verbatim.
type CDATA struct {
	tagCore
}

func (c *CDATA) Kind() SegmentKind { return KindCDATA }

// DOCTYPE is "<!DOCTYPE" Name [ExternalId] [InternalDefinition] ">".
type DOCTYPE struct {
	tagCore
	RootName *NameSegment
	PublicID *QuotedString
	SystemID *QuotedString
	Internal *InternalDefinition
}

func (d *DOCTYPE) Kind() SegmentKind { return KindDOCTYPE }
