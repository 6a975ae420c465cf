// pkg/sink/writer.go
package sink

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/emailops/email-ingress/pkg/model"
)

// FileWriter persists the cleaned dataset and the run report with
// timestamped filenames.
type FileWriter struct {
	outputDir string
	logger    *zap.Logger
}

// NewFileWriter creates a new FileWriter instance.
func NewFileWriter(outputDir string, logger *zap.Logger) (*FileWriter, error) {
	if outputDir == "" {
		return nil, errors.New("output directory cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileWriter{outputDir: outputDir, logger: logger}, nil
}

// WriteDataset writes the cleaned table as CSV and returns the file path.
func (w *FileWriter) WriteDataset(baseName string, ds *model.Dataset) (string, error) {
	path := filepath.Join(w.outputDir, baseName+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create data file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(model.OutputColumns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(model.OutputColumns))
	for _, row := range ds.Rows {
		for i, col := range model.OutputColumns {
			record[i] = row.Get(col)
		}
		if err := cw.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("failed to flush data file: %w", err)
	}

	w.logger.Info("Wrote cleaned dataset",
		zap.String("path", path),
		zap.Int("rows", ds.Len()))

	return path, nil
}

// WriteReport writes the processing report next to the dataset and returns
// the file path.
func (w *FileWriter) WriteReport(baseName, report string) (string, error) {
	path := filepath.Join(w.outputDir, baseName+"_report.txt")

	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	w.logger.Info("Wrote processing report", zap.String("path", path))
	return path, nil
}
