package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emailops/email-ingress/pkg/model"
)

func TestExtractAddress_DisplayName(t *testing.T) {
	assert.Equal(t, "jane@x.com", ExtractAddress("Jane Doe <jane@x.com>"))
	assert.Equal(t, "jane@x.com", ExtractAddress("  Jane <jane@x.com>  "))
}

func TestExtractAddress_BareAddress(t *testing.T) {
	assert.Equal(t, "bob@y.org", ExtractAddress("bob@y.org"))
	assert.Equal(t, "bob@y.org", ExtractAddress("  bob@y.org "))
}

func TestExtractAddress_NoUsableToken(t *testing.T) {
	assert.Equal(t, model.Null, ExtractAddress(""))
	assert.Equal(t, model.Null, ExtractAddress("   "))
	assert.Equal(t, model.Null, ExtractAddress("Jane <>"))
	assert.Equal(t, model.Null, ExtractAddress(model.Null))
}

func TestExtractAddress_UnterminatedBracket(t *testing.T) {
	// Best effort: take everything after the opening bracket.
	assert.Equal(t, "jane@x.com", ExtractAddress("Jane <jane@x.com"))
}

func TestExtractAddress_NestedBrackets(t *testing.T) {
	// The last bracket pair wins.
	assert.Equal(t, "real@x.com", ExtractAddress("<fake@y.com> Jane <real@x.com>"))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "x.com", ExtractDomain("jane@x.com"))
	assert.Equal(t, "x.com", ExtractDomain(`"weird@local"@x.com`))
	assert.Equal(t, model.Null, ExtractDomain("no-at-sign"))
	assert.Equal(t, model.Null, ExtractDomain(model.Null))
}

func TestExtractDomain_TrailingAt(t *testing.T) {
	// The substring after a trailing "@" is empty, not the sentinel.
	assert.Equal(t, "", ExtractDomain("user@"))
}
