package xmldoc

import "strings"

// FormatOptions configures the pretty printer (Component F, spec.md
// §4.6). Every field is optional; the zero value of each resolves to
// the documented default via withDefaults.
type FormatOptions struct {
	SingleIndent       string
	TabLength          int
	Newline            string
	CurrentIndent      string
	CurrentColumnIndex int
	AlignAttributes    bool
}

func (o FormatOptions) withDefaults() FormatOptions {
	if o.SingleIndent == "" {
		o.SingleIndent = "  "
	}
	if o.TabLength == 0 {
		o.TabLength = 2
	}
	if o.Newline == "" {
		o.Newline = "\n"
	}
	return o
}

// formatContext tracks the mutable state threaded through a single
// Format call: an indent stack, the running output column, and the
// output buffer itself (spec.md §9: "a single mutable integer ...
// updated as characters are written").
type formatContext struct {
	opts        FormatOptions
	indentStack []string
	col         int
	out         strings.Builder
	lastNewline bool
}

func newFormatContext(opts FormatOptions) *formatContext {
	return &formatContext{
		opts:        opts,
		indentStack: []string{opts.CurrentIndent},
		col:         opts.CurrentColumnIndex,
		lastNewline: true,
	}
}

func (fc *formatContext) currentIndent() string {
	return fc.indentStack[len(fc.indentStack)-1]
}

func (fc *formatContext) pushIndent(s string) {
	fc.indentStack = append(fc.indentStack, s)
}

func (fc *formatContext) popIndent() {
	fc.indentStack = fc.indentStack[:len(fc.indentStack)-1]
}

// write appends s to the output, advancing the column tracker:
// newline resets it to 0, tab advances it by tabLength, anything else
// advances it by 1 (spec.md §4.6).
func (fc *formatContext) write(s string) {
	if s == "" {
		return
	}
	for _, r := range s {
		switch r {
		case '\n':
			fc.col = 0
		case '\t':
			fc.col += fc.opts.TabLength
		default:
			fc.col++
		}
	}
	fc.out.WriteString(s)
	fc.lastNewline = s[len(s)-1] == '\n'
}

func (fc *formatContext) writeNewline() {
	fc.write(fc.opts.Newline)
}

func (fc *formatContext) writeIndent() {
	fc.write(fc.currentIndent())
}

func alignIndent(opts FormatOptions, col int) string {
	if opts.SingleIndent == "\t" {
		tabs := col / opts.TabLength
		spaces := col % opts.TabLength
		return strings.Repeat("\t", tabs) + strings.Repeat(" ", spaces)
	}
	return strings.Repeat(" ", col)
}

func nextPieceIsRightAngle(pieces []Segment, i int) bool {
	if i+1 >= len(pieces) {
		return false
	}
	lex, ok := pieces[i+1].(Lex)
	return ok && lex.Kind == RightAngleBracket
}

// formatTag walks a tag's child pieces (spec.md §4.6's "Tag
// formatting" and "Attribute-value alignment" rules): NewLine children
// are preserved verbatim (followed by the current indent); other
// Whitespace children collapse to a single space, except directly
// before '>' or directly after a NewLine; the first Attribute child
// triggers alignment-indent push when AlignAttributes is set.
func (fc *formatContext) formatTag(pieces []Segment) {
	pushedAlign := false
	for i, p := range pieces {
		switch v := p.(type) {
		case Lex:
			switch v.Kind {
			case NewLine:
				fc.writeNewline()
				fc.writeIndent()
			case Whitespace:
				afterNewLine := false
				if i > 0 {
					prev, ok := pieces[i-1].(Lex)
					afterNewLine = ok && prev.Kind == NewLine
				}
				if !afterNewLine && !nextPieceIsRightAngle(pieces, i) {
					fc.write(" ")
				}
			default:
				fc.write(v.Text)
			}
		case *Attribute:
			if fc.opts.AlignAttributes && !pushedAlign {
				fc.pushIndent(alignIndent(fc.opts, fc.col))
				pushedAlign = true
			}
			fc.write(v.String())
		default:
			fc.write(p.String())
		}
	}
	if pushedAlign {
		fc.popIndent()
	}
}

func (fc *formatContext) formatStartTagSelfClosing(st *StartTag) {
	pieces := st.pieces
	if st.closed {
		pieces = pieces[:len(pieces)-1]
	}
	fc.formatTag(pieces)
	fc.write("/>")
}

// classifyChildren drops whitespace-only Text children and bare
// NewLine lexes, returning whatever substantive content remains.
func classifyChildren(children []Segment) []Segment {
	var out []Segment
	for _, c := range children {
		if isWhitespaceOnlySegment(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// formatElement implements spec.md §4.6's Element formatting rules.
func (fc *formatContext) formatElement(e *Element) {
	content := classifyChildren(e.Children)
	switch {
	case len(content) == 0:
		fc.formatCollapsedEmptyElement(e)
	case len(content) == 1:
		if txt, ok := content[0].(*TextSegment); ok {
			fc.formatInlineTextElement(e, txt)
			return
		}
		fc.formatMultilineElement(e)
	default:
		fc.formatMultilineElement(e)
	}
}

func endTagMatchesStart(e *Element) bool {
	if e.EndTag == nil || e.StartTag.Name == nil || e.EndTag.Name == nil {
		return false
	}
	return Matches(e.StartTag.Name.Text(), e.EndTag.Name.Text())
}

func (fc *formatContext) formatCollapsedEmptyElement(e *Element) {
	if endTagMatchesStart(e) {
		fc.formatStartTagSelfClosing(e.StartTag)
		return
	}
	fc.formatMultilineElement(e)
}

func (fc *formatContext) formatInlineTextElement(e *Element, txt *TextSegment) {
	fc.formatTag(e.StartTag.pieces)
	fc.write(txt.TrimmedString())
	if e.EndTag != nil {
		fc.formatTag(e.EndTag.pieces)
	}
}

func (fc *formatContext) formatMultilineElement(e *Element) {
	fc.formatTag(e.StartTag.pieces)
	fc.pushIndent(fc.currentIndent() + fc.opts.SingleIndent)

	newlineRun := 0
	for _, c := range e.Children {
		if lex, ok := c.(Lex); ok && lex.Kind == NewLine {
			newlineRun++
			continue
		}
		if txt, ok := c.(*TextSegment); ok && txt.IsWhitespace() {
			continue
		}
		for i := 0; i < max(0, newlineRun-1); i++ {
			fc.writeNewline()
		}
		fc.writeNewline()
		fc.writeIndent()
		fc.formatSegment(c)
		newlineRun = 0
	}

	fc.popIndent()
	fc.writeNewline()
	fc.writeIndent()
	if e.EndTag != nil {
		fc.formatTag(e.EndTag.pieces)
	}
}

// formatSegment dispatches any Segment to its formatted representation
// — used both for Element children and top-level Document segments.
// Comment, CDATA, and ProcessingInstruction are written raw with no
// internal reflow, per spec.md §4.6.
func (fc *formatContext) formatSegment(seg Segment) {
	switch s := seg.(type) {
	case *Element:
		fc.formatElement(s)
	case *EmptyElement:
		fc.formatTag(s.pieces)
	case *StartTag:
		fc.formatTag(s.pieces)
	case *EndTag:
		fc.formatTag(s.pieces)
	case *Declaration:
		fc.formatTag(s.pieces)
	case *DOCTYPE:
		fc.formatTag(s.pieces)
	case *ProcessingInstruction:
		fc.write(s.String())
	case *Comment:
		fc.write(s.String())
	case *CDATA:
		fc.write(s.String())
	case *UnrecognizedTag:
		fc.write(s.String())
	default:
		fc.write(seg.String())
	}
}

// Format pretty-prints the document (spec.md §6's
// Document.format(options?)). Omitted FormatOptions fields use the
// defaults documented on FormatOptions.
func (d Document) Format(opts FormatOptions) string {
	fc := newFormatContext(opts.withDefaults())

	for _, seg := range d.Segments {
		if txt, ok := seg.(*TextSegment); ok && txt.IsWhitespace() {
			continue
		}
		if lex, ok := seg.(Lex); ok && lex.Kind == NewLine {
			fc.writeNewline()
			continue
		}
		if !fc.lastNewline {
			fc.writeNewline()
		}
		fc.formatSegment(seg)
	}

	return fc.out.String()
}
