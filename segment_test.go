package xmldoc

import "testing"

func firstSegment(t *testing.T, input string) Segment {
	t.Helper()
	segs := NewTokenizer(input, nil).Collect()
	if len(segs) == 0 {
		t.Fatalf("tokenizing %q produced no segments", input)
	}
	return segs[0]
}

func TestNameSegmentContainsIndexInclusiveBothEnds(t *testing.T) {
	st := firstSegment(t, "<abc>").(*StartTag)
	n := st.Name
	if n.Text() != "abc" {
		t.Fatalf("Name.Text() = %q, want %q", n.Text(), "abc")
	}
	sp := n.Span() // StartIndex 1, length 3 -> [1,4)
	if sp.Start != 1 || sp.AfterEnd() != 4 {
		t.Fatalf("Name span = %+v, want start 1 afterEnd 4", sp)
	}
	for _, i := range []int{1, 2, 3, 4} {
		if !n.ContainsIndex(i) {
			t.Errorf("ContainsIndex(%d) = false, want true (inclusive)", i)
		}
	}
	if n.ContainsIndex(0) || n.ContainsIndex(5) {
		t.Errorf("ContainsIndex should exclude indices outside [1,4]")
	}
}

func TestQuotedStringExcludesEndQuote(t *testing.T) {
	st := firstSegment(t, `<a foo="bar">`).(*StartTag)
	attr := st.Attributes[0]
	q := attr.Value()
	if !q.HasEndQuote() {
		t.Fatalf("expected a closing quote")
	}
	if q.UnquotedString() != "bar" {
		t.Fatalf("UnquotedString() = %q, want %q", q.UnquotedString(), "bar")
	}
	endQuoteIdx := q.Span().AfterEnd() - 1
	if q.ContainsIndex(endQuoteIdx) {
		t.Errorf("ContainsIndex(%d) should exclude the closing quote", endQuoteIdx)
	}
	if !q.ContainsIndex(endQuoteIdx - 1) {
		t.Errorf("ContainsIndex should include the last content character")
	}
}

func TestQuotedStringUnterminatedIncludesEverythingAfterStart(t *testing.T) {
	st := firstSegment(t, `<a foo="bar`).(*StartTag)
	attr := st.Attributes[0]
	q := attr.Value()
	if q.HasEndQuote() {
		t.Fatalf("expected no closing quote")
	}
	if !q.ContainsIndex(q.Span().AfterEnd() - 1) {
		t.Errorf("unterminated QuotedString should contain its last index")
	}
}

func TestAttributeContainsIndexExcludesTrailingWhitespace(t *testing.T) {
	st := firstSegment(t, `<a foo='1'  >`).(*StartTag)
	attr := st.Attributes[0]
	// attr span ends right after the closing quote; the two trailing
	// spaces before '>' belong to the tag, not the attribute.
	afterAttr := attr.Span().AfterEnd()
	if attr.ContainsIndex(afterAttr) {
		t.Errorf("Attribute.ContainsIndex should exclude the whitespace following it")
	}
}

func TestTagCoreContainsIndexExclusiveBothEndsWhenClosed(t *testing.T) {
	st := firstSegment(t, "<a>").(*StartTag)
	sp := st.Span() // [0, 3)
	if sp.Start != 0 || sp.AfterEnd() != 3 {
		t.Fatalf("span = %+v", sp)
	}
	if st.ContainsIndex(0) {
		t.Errorf("left bound (the '<') should be excluded")
	}
	if !st.ContainsIndex(1) || !st.ContainsIndex(2) {
		t.Errorf("interior indices should be included")
	}
	if st.ContainsIndex(3) {
		t.Errorf("afterEnd index should be excluded when closed")
	}
}

func TestTagCoreUnterminatedIsOpenEnded(t *testing.T) {
	st := firstSegment(t, "<a").(*StartTag)
	if st.ContainsIndex(0) {
		t.Errorf("left bound should still be excluded")
	}
	if !st.ContainsIndex(100) {
		t.Errorf("an unterminated tag should contain indices past its last lex (open-ended)")
	}
}

func TestTextSegmentInclusiveAndWhitespace(t *testing.T) {
	segs := NewTokenizer("  test  ", nil).Collect()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	txt := segs[0].(*TextSegment)
	if txt.IsWhitespace() {
		t.Fatalf("expected non-whitespace text")
	}
	if got := txt.TrimmedString(); got != "test" {
		t.Fatalf("TrimmedString() = %q, want %q", got, "test")
	}
	nws, ok := txt.NonWhitespaceSpan()
	if !ok {
		t.Fatalf("expected a non-whitespace span")
	}
	if txt.String()[nws.Start-txt.Span().Start:nws.AfterEnd()-txt.Span().Start] != "test" {
		t.Errorf("NonWhitespaceSpan did not locate 'test' precisely")
	}
}

func TestTextSegmentAllWhitespace(t *testing.T) {
	segs := NewTokenizer("   ", nil).Collect()
	txt := segs[0].(*TextSegment)
	if !txt.IsWhitespace() {
		t.Fatalf("expected an all-whitespace segment")
	}
	if _, ok := txt.NonWhitespaceSpan(); ok {
		t.Fatalf("NonWhitespaceSpan should report ok=false for all-whitespace text")
	}
	if txt.TrimmedString() != "" {
		t.Fatalf("TrimmedString() = %q, want empty", txt.TrimmedString())
	}
}

func TestInternalDefinitionContainsIndex(t *testing.T) {
	segs := NewTokenizer("<!DOCTYPE a [ ]>", nil).Collect()
	dt := segs[0].(*DOCTYPE)
	if dt.Internal == nil {
		t.Fatalf("expected an internal subset")
	}
	sp := dt.Internal.Span()
	if dt.Internal.ContainsIndex(sp.Start) {
		t.Errorf("left bound should be excluded")
	}
	if dt.Internal.ContainsIndex(sp.AfterEnd()) {
		t.Errorf("afterEnd should be excluded when closed")
	}
}

func TestLexSatisfiesSegmentAsBareNewline(t *testing.T) {
	segs := NewTokenizer("\n", nil).Collect()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	l, ok := segs[0].(Lex)
	if !ok {
		t.Fatalf("expected a bare Lex segment, got %T", segs[0])
	}
	if l.Kind() != KindLex {
		t.Errorf("Lex.Kind() = %v, want KindLex", l.Kind())
	}
}
