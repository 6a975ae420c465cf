// pkg/cleaner/cleaner.go
package cleaner

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/emailops/email-ingress/pkg/model"
)

// CleanText scrubs a text value for downstream use: compatibility-composed
// Unicode normalization (NFKC) to fold visually-equivalent characters,
// removal of every rune outside the printable 7-bit range, and whitespace
// trimming. Missing values stay the sentinel.
//
// Dropping non-ASCII runes discards non-Latin scripts and emoji entirely.
func CleanText(raw string) string {
	if raw == model.Null {
		return model.Null
	}

	folded := norm.NFKC.String(raw)

	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if r <= 0x7F {
			sb.WriteRune(r)
		}
	}

	return strings.TrimSpace(sb.String())
}

// TruncateBody caps a cleaned body at MaxBodyLength characters. The
// sentinel is never truncated.
func TruncateBody(body string) string {
	if body == model.Null {
		return body
	}
	runes := []rune(body)
	if len(runes) <= model.MaxBodyLength {
		return body
	}
	return string(runes[:model.MaxBodyLength])
}
