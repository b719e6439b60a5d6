package xmldoc

import "testing"

func buildFirstElement(t *testing.T, input string) *Element {
	t.Helper()
	sink := &IssueSlice{}
	eb := NewElementBuilder(NewTokenizer(input, sink), sink)
	segs := eb.Collect()
	for _, s := range segs {
		if el, ok := s.(*Element); ok {
			return el
		}
	}
	t.Fatalf("no *Element found in %v", segs)
	return nil
}

func TestElementRoundTrip(t *testing.T) {
	input := "<a><b>x</b><c/></a>"
	el := buildFirstElement(t, input)
	if el.String() != input {
		t.Fatalf("String() = %q, want %q", el.String(), input)
	}
	if el.Name() != "a" {
		t.Errorf("Name() = %q, want a", el.Name())
	}
}

func TestElementSpanCoversStartAndEndTag(t *testing.T) {
	el := buildFirstElement(t, "<a>mid</a>")
	sp := el.Span()
	if sp.Start != 0 || sp.AfterEnd() != len("<a>mid</a>") {
		t.Fatalf("span = %+v", sp)
	}
}

func TestElementSpanWithoutEndTag(t *testing.T) {
	el := buildFirstElement(t, "<a>mid")
	sp := el.Span()
	if sp.AfterEnd() != len("<a>mid") {
		t.Fatalf("span = %+v, want afterEnd %d", sp, len("<a>mid"))
	}
}

func TestElementDescendants(t *testing.T) {
	el := buildFirstElement(t, "<a><b><c/></b><d/></a>")
	names := map[string]bool{}
	for _, d := range el.Descendants() {
		names[d.Name()] = true
	}
	for _, want := range []string{"a", "b"} {
		if !names[want] {
			t.Errorf("Descendants() missing %q", want)
		}
	}
	// c and d are EmptyElement, not *Element, so they don't appear as
	// their own Descendants entries; only a and b are *Element.
	if len(el.Descendants()) != 2 {
		t.Errorf("Descendants() = %d entries, want 2 (a, b)", len(el.Descendants()))
	}
}
