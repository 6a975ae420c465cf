// pkg/converter/dates.go
package converter

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/emailops/email-ingress/pkg/model"
)

// DateLayout is the canonical output form for normalized dates.
const DateLayout = "2006-01-02 15:04:05"

var dateConfig = &dps.Configuration{
	DefaultTimezone: time.UTC,
}

// NormalizeDate coerces an arbitrary date representation into the canonical
// "YYYY-MM-DD HH:MM:SS" form. Parsing is permissive and locale-tolerant;
// any failure degrades to the sentinel. The parsed timestamp is kept as-is
// with no timezone conversion.
func NormalizeDate(raw string) string {
	if raw == model.Null {
		return model.Null
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.Null
	}

	parsed, err := dps.Parse(dateConfig, trimmed)
	if err != nil || parsed.Time.IsZero() {
		return model.Null
	}

	return parsed.Time.Format(DateLayout)
}
