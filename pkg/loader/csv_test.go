package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emailops/email-ingress/pkg/model"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func newTestLoader(t *testing.T) *FileLoader {
	t.Helper()
	l, err := NewFileLoader(zap.NewNop())
	require.NoError(t, err)
	return l
}

func TestLoadCSV_UTF8(t *testing.T) {
	l := newTestLoader(t)
	path := writeTempFile(t, "mail.csv", []byte(
		"From,To,Date,Subject,Body\n"+
			"jane@x.com,bob@y.com,2024-01-05,Hello,World\n"+
			"kim@w.com,bob@y.com,2024-01-06,Status,All good\n"))

	ds, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"From", "To", "Date", "Subject", "Body"}, ds.Columns)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "jane@x.com", ds.Rows[0].Get("From"))
	assert.Equal(t, "All good", ds.Rows[1].Get("Body"))
}

func TestLoadCSV_EmptyCellsBecomeSentinel(t *testing.T) {
	l := newTestLoader(t)
	path := writeTempFile(t, "mail.csv", []byte(
		"From,To,Subject\n"+
			"jane@x.com,,Hello\n"+
			"kim@w.com,bob@y.com\n"))

	ds, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	assert.Equal(t, model.Null, ds.Rows[0].Get("To"))
	// Short rows leave trailing columns absent, which also reads as sentinel.
	assert.Equal(t, model.Null, ds.Rows[1].Get("Subject"))
}

func TestLoadCSV_SemicolonDelimiter(t *testing.T) {
	l := newTestLoader(t)
	path := writeTempFile(t, "mail.csv", []byte(
		"From;To;Subject\n"+
			"jane@x.com;bob@y.com;Hello\n"))

	ds, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"From", "To", "Subject"}, ds.Columns)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "bob@y.com", ds.Rows[0].Get("To"))
}

func TestLoadCSV_TabDelimiter(t *testing.T) {
	l := newTestLoader(t)
	path := writeTempFile(t, "mail.csv", []byte(
		"From\tTo\tSubject\n"+
			"jane@x.com\tbob@y.com\tHello\n"))

	ds, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"From", "To", "Subject"}, ds.Columns)
	assert.Equal(t, "Hello", ds.Rows[0].Get("Subject"))
}

func TestLoadCSV_Latin1Fallback(t *testing.T) {
	l := newTestLoader(t)
	// 0xE9 is é in latin1 but invalid as a standalone utf-8 byte.
	path := writeTempFile(t, "mail.csv", []byte(
		"From,Subject\njane@x.com,caf\xe9\n"))

	ds, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "café", ds.Rows[0].Get("Subject"))
}

func TestLoadCSV_NoHeader(t *testing.T) {
	l := newTestLoader(t)
	path := writeTempFile(t, "empty.csv", []byte(""))

	ds, err := l.Load(path)
	assert.Nil(t, ds)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	l := newTestLoader(t)
	path := writeTempFile(t, "mail.json", []byte("{}"))

	ds, err := l.Load(path)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var le *LoadError
	assert.ErrorAs(t, err, &le)
}

func TestLoad_MissingFile(t *testing.T) {
	l := newTestLoader(t)

	ds, err := l.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Nil(t, ds)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeWithFallback(t *testing.T) {
	text, enc, err := decodeWithFallback([]byte("plain ascii"))
	require.NoError(t, err)
	assert.Equal(t, "utf-8", enc)
	assert.Equal(t, "plain ascii", text)

	text, enc, err = decodeWithFallback([]byte("caf\xe9"))
	require.NoError(t, err)
	assert.Equal(t, "latin1", enc)
	assert.Equal(t, "café", text)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ',', detectDelimiter([]byte("a,b,c\n1,2,3")))
	assert.Equal(t, ';', detectDelimiter([]byte("a;b;c\n1;2;3")))
	assert.Equal(t, '\t', detectDelimiter([]byte("a\tb\tc\n1\t2\t3")))
}
