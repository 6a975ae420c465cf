// pkg/converter/address.go
package converter

import (
	"strings"

	"github.com/emailops/email-ingress/pkg/model"
)

// ExtractAddress pulls a bare email address out of an address-bearing
// string such as `Jane Doe <jane@x.com>`. The text inside angle brackets
// wins when present; otherwise the whole trimmed string is treated as the
// address. Missing or unusable input degrades to the sentinel, never an
// error.
func ExtractAddress(raw string) string {
	if raw == model.Null {
		return model.Null
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.Null
	}

	// Display-name form: take the contents of the last angle-bracket pair.
	if open := strings.LastIndex(trimmed, "<"); open >= 0 {
		rest := trimmed[open+1:]
		end := strings.Index(rest, ">")
		if end < 0 {
			// Unterminated bracket, best effort on the remainder
			end = len(rest)
		}
		addr := strings.TrimSpace(rest[:end])
		if addr == "" {
			return model.Null
		}
		return addr
	}

	return trimmed
}

// ExtractDomain derives the domain from an extracted address: the substring
// after the last "@". No domain syntax validation is performed.
func ExtractDomain(addr string) string {
	if addr == model.Null {
		return model.Null
	}

	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return model.Null
	}
	return addr[at+1:]
}
