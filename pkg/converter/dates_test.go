package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emailops/email-ingress/pkg/model"
)

func TestNormalizeDate_CommonFormats(t *testing.T) {
	cases := map[string]string{
		"2024/01/05":                     "2024-01-05 00:00:00",
		"2024-01-05":                     "2024-01-05 00:00:00",
		"2024-01-05 13:45:10":            "2024-01-05 13:45:10",
		"Mon, 01 Jan 2024 10:00:00":      "2024-01-01 10:00:00",
		"January 5, 2024":                "2024-01-05 00:00:00",
		"05 Jan 2024 08:30:00":           "2024-01-05 08:30:00",
		"2024-01-05T13:45:10":            "2024-01-05 13:45:10",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeDate(input), "input %q", input)
	}
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	for _, input := range []string{"not a date at all", "???", "", "   ", model.Null} {
		assert.Equal(t, model.Null, NormalizeDate(input), "input %q", input)
	}
}

func TestNormalizeDate_CanonicalFormIsStable(t *testing.T) {
	once := NormalizeDate("2024/01/05")
	assert.Equal(t, once, NormalizeDate(once))
}
