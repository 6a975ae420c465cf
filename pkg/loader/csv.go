// pkg/loader/csv.go
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/emailops/email-ingress/pkg/model"
)

// loadCSV reads a CSV export, trying a chain of text encodings the way
// dirty real-world exports require.
func (l *FileLoader) loadCSV(path string) (*model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, encName, err := decodeWithFallback(data)
	if err != nil {
		return nil, err
	}
	l.logger.Info("Decoded CSV input", zap.String("encoding", encName))

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter([]byte(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var header []string
	var rows [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		if header == nil {
			header = rec
			continue
		}
		rows = append(rows, rec)
	}
	if header == nil {
		return nil, errors.New("file contains no header row")
	}

	return buildDataset(header, rows), nil
}

// decodeWithFallback tries utf-8, then latin1 (iso-8859-1), then cp1252,
// returning the decoded text and the encoding that worked. An input no
// encoding can represent cleanly is a load failure.
func decodeWithFallback(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	fallbacks := []struct {
		name string
		cm   *charmap.Charmap
	}{
		{"latin1", charmap.ISO8859_1},
		{"cp1252", charmap.Windows1252},
	}

	for _, fb := range fallbacks {
		decoded, err := fb.cm.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		// Reject decodes that had to substitute replacement characters.
		if bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		return string(decoded), fb.name, nil
	}

	return "", "", errors.New("undecodable under any attempted text encoding")
}

// detectDelimiter sniffs the delimiter from the first few kilobytes.
func detectDelimiter(b []byte) rune {
	if len(b) > 4096 {
		b = b[:4096]
	}
	cComma := bytes.Count(b, []byte{','})
	cTab := bytes.Count(b, []byte{'\t'})
	cSemi := bytes.Count(b, []byte{';'})
	if cTab > cComma && cTab > cSemi {
		return '\t'
	}
	if cSemi > cComma {
		return ';'
	}
	return ','
}
