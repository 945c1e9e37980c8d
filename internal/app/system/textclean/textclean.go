// Package textclean strips markup from user-supplied free-text fields
// before they are stored. The API stores plain text only (bios, project
// descriptions, work highlights); anything resembling HTML is removed.
package textclean

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Strip removes all HTML markup from s and trims surrounding
// whitespace.
func Strip(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// StripAll applies Strip to every element of ss, in place, and returns
// the slice.
func StripAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = Strip(s)
	}
	return ss
}
