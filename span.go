package xmldoc

import "fmt"

// Span is a half-open byte (code-unit) range [Start, Start+Length).
type Span struct {
	Start  int
	Length int
}

// AfterEnd returns the first index past the span.
func (s Span) AfterEnd() int {
	return s.Start + s.Length
}

// Contains reports whether i falls within [Start, AfterEnd), the
// default inclusivity rule used by spans that don't need the
// variant-specific containsIndex rules in segment.go.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.AfterEnd()
}

// String renders the span as "start..afterEnd", used by Issue.String
// and test failure messages.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.AfterEnd())
}
