// Package sanitize cleans untrusted free-text input before it reaches
// persistence. Structured fields (identifiers, enums, dates) are validated
// by type and pattern instead and must not pass through here.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	richPolicy   = newRichPolicy()
)

// newRichPolicy allows a small fixed set of formatting tags. Event handlers
// and scriptable attributes are stripped unconditionally: no attributes are
// allowed on any element.
func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "u", "ul", "ol", "li")
	return p
}

// Strict strips all markup, trims whitespace and clamps the result to
// maxLen runes. Truncation is silent. maxLen <= 0 means no limit.
// Applying Strict to its own output is a no-op.
func Strict(s string, maxLen int) string {
	cleaned := strings.TrimSpace(strictPolicy.Sanitize(s))
	if maxLen > 0 {
		runes := []rune(cleaned)
		if len(runes) > maxLen {
			// truncation can expose trailing whitespace
			cleaned = strings.TrimSpace(string(runes[:maxLen]))
		}
	}
	return cleaned
}

// Rich strips all markup except basic formatting tags
// (p, br, strong, em, u, ul, ol, li) and trims whitespace.
func Rich(s string) string {
	return strings.TrimSpace(richPolicy.Sanitize(s))
}
