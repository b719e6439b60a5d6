package xmldoc

// ElementBuilder layers element nesting over the segment stream
// (Component D, spec.md §4.4): it pairs StartTag with EndTag into a
// tree and passes every other segment through unchanged.
type ElementBuilder struct {
	tk   *Tokenizer
	sink IssueSink
}

// NewElementBuilder wraps tk, reporting nesting diagnostics to sink.
func NewElementBuilder(tk *Tokenizer, sink IssueSink) *ElementBuilder {
	return &ElementBuilder{tk: tk, sink: sink}
}

// Next returns the next top-level Segment, with any StartTag expanded
// into a fully nested *Element. EmptyElement, EndTag (unmatched, at
// this level only reachable when no enclosing StartTag consumed it),
// and every other segment kind pass through unchanged.
func (b *ElementBuilder) Next() (Segment, bool) {
	seg, ok := b.tk.Next()
	if !ok {
		return nil, false
	}
	if start, isStart := seg.(*StartTag); isStart {
		return b.buildElement(start), true
	}
	return seg, true
}

// buildElement recursively accumulates children of start until a
// matching EndTag is seen or the stream ends (spec.md §4.4).
func (b *ElementBuilder) buildElement(start *StartTag) *Element {
	el := &Element{StartTag: start}

	for {
		seg, ok := b.tk.Next()
		if !ok {
			report(b.sink, MsgMissingElementEndTag, start.Name.Span())
			return el
		}
		if nestedStart, isStart := seg.(*StartTag); isStart {
			el.Children = append(el.Children, b.buildElement(nestedStart))
			continue
		}
		if end, isEnd := seg.(*EndTag); isEnd {
			endText, startText := "", ""
			anchor := end.Span()
			if end.Name != nil {
				endText = end.Name.Text()
				anchor = end.Name.Span()
			}
			if start.Name != nil {
				startText = start.Name.Text()
			}
			if !Matches(endText, startText) {
				report(b.sink, MsgExpectedElementEndTagWithDifferentName, anchor)
			}
			el.EndTag = end
			return el
		}
		el.Children = append(el.Children, seg)
	}
}

// Collect drains the ElementBuilder into a slice.
func (b *ElementBuilder) Collect() []Segment {
	var out []Segment
	for {
		s, ok := b.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
