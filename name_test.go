package xmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesCaseInsensitive(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"xml", "XML", true},
		{"Version", "version", true},
		{"café", "CAFÉ", true},
		{"a", "b", false},
		{"", "", false},
		{"a", "", false},
		{"", "a", false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Matches(c.a, c.b), "Matches(%q, %q)", c.a, c.b)
	}
}
