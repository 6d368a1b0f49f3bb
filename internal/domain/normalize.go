package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares raw text for segmentation:
//   - decomposes with NFKD and drops combining marks, so accented Latin
//     letters reduce to their base form
//   - removes all whitespace characters (not merely collapsed), including
//     any a compatibility decomposition introduces (e.g. U+00A8)
//
// Han characters have no combining-mark decomposition and pass through
// untouched. The function is idempotent; empty input yields empty output.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(text))
	for _, r := range norm.NFKD.String(text) {
		if unicode.IsSpace(r) || unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
