package xmldoc

// Element nests a StartTag, its children, and (if present) a matching
// EndTag into a tree (Component D, spec.md §4.4). EndTag is nil when
// the input ended before an end tag closed this element; the Element
// Builder reports that with missingElementEndTag. An end tag whose
// name does not match is still stored here.
type Element struct {
	StartTag *StartTag
	Children []Segment
	EndTag   *EndTag
}

func (e *Element) Kind() SegmentKind { return KindElement }

func (e *Element) Span() Span {
	start := e.StartTag.Span().Start
	var afterEnd int
	switch {
	case e.EndTag != nil:
		afterEnd = e.EndTag.Span().AfterEnd()
	case len(e.Children) > 0:
		afterEnd = e.Children[len(e.Children)-1].Span().AfterEnd()
	default:
		afterEnd = e.StartTag.Span().AfterEnd()
	}
	return Span{Start: start, Length: afterEnd - start}
}

func (e *Element) String() string {
	s := e.StartTag.String()
	for _, c := range e.Children {
		s += c.String()
	}
	if e.EndTag != nil {
		s += e.EndTag.String()
	}
	return s
}

// ContainsIndex uses the standard half-open rule over the element's
// full span, from its start tag's '<' through its end tag's '>' (or
// through its last child when the end tag is missing).
func (e *Element) ContainsIndex(i int) bool {
	return e.Span().Contains(i)
}

// Name returns the element's tag name text, read off its start tag.
func (e *Element) Name() string {
	return e.StartTag.Name.Text()
}

// Descendants returns every Element in this subtree in document
// order, including e itself (a supplemented convenience,
// SPEC_FULL.md §4, for callers that want to walk a tree without
// hand-rolling the recursion every time).
func (e *Element) Descendants() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		out = append(out, el)
		for _, c := range el.Children {
			if child, ok := c.(*Element); ok {
				walk(child)
			}
		}
	}
	walk(e)
	return out
}
