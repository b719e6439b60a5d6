package xmldoc

import "golang.org/x/text/cases"

var nameFold = cases.Fold()

// Matches reports whether a and b are the same XML name under the
// spec's case-insensitive comparison rule (spec.md §9's matches(a, b)).
// It uses golang.org/x/text/cases rather than strings.EqualFold so
// names containing non-ASCII letters (accented Latin, Cyrillic, Greek
// tag/attribute names — all legal per the XML Name production) fold
// correctly; strings.EqualFold is documented as a simple approximation
// that does not handle full Unicode case folding.
func Matches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return nameFold.String(a) == nameFold.String(b)
}
