// pkg/loader/loader.go
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/emailops/email-ingress/pkg/model"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor Excel.
var ErrUnsupportedFormat = errors.New("unsupported file format, use CSV or Excel")

// LoadError is the only fatal error class of a run: the input could not be
// read, decoded, or parsed at all. Everything past loading degrades
// per-field instead of failing.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading file %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// FileLoader reads a tabular email export from disk into a Dataset,
// dispatching on file extension.
type FileLoader struct {
	logger *zap.Logger
}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader(logger *zap.Logger) (*FileLoader, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &FileLoader{logger: logger}, nil
}

// Load reads the file at path. The first row is the header; empty cells
// load as the missing-value sentinel, whitespace-only cells stay literal.
func (l *FileLoader) Load(path string) (*model.Dataset, error) {
	var (
		ds  *model.Dataset
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		ds, err = l.loadCSV(path)
	case ".xlsx":
		ds, err = l.loadXLSX(path)
	case ".xls":
		ds, err = l.loadXLS(path)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	l.logger.Info("Loaded input file",
		zap.String("path", path),
		zap.Int("rows", ds.Len()),
		zap.Strings("columns", ds.Columns))

	return ds, nil
}

// buildDataset assembles a Dataset from a header row and cell rows. Cells
// beyond the header width are dropped; rows shorter than the header leave
// the remaining columns absent (and therefore sentinel-valued).
func buildDataset(header []string, rows [][]string) *model.Dataset {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	ds := model.NewDataset(columns)
	for _, cells := range rows {
		row := make(model.Record, len(columns))
		for i, col := range columns {
			if i >= len(cells) {
				break
			}
			if cells[i] == "" {
				row[col] = model.Null
			} else {
				row[col] = cells[i]
			}
		}
		ds.Append(row)
	}
	return ds
}
