package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emailops/email-ingress/pkg/model"
)

func TestNewFileWriter_Validation(t *testing.T) {
	w, err := NewFileWriter("", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, w)

	w, err = NewFileWriter(t.TempDir(), nil)
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestWriteDataset(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFileWriter(dir, zap.NewNop())
	require.NoError(t, err)

	ds := model.NewDataset(model.OutputColumns)
	ds.Append(model.Record{
		model.ColSender: "jane@x.com", model.ColRecipient: "bob@y.com",
		model.ColSenderDomain: "x.com", model.ColDate: "2024-01-05 00:00:00",
		model.ColSubject: "Hello", model.ColBody: "World",
	})

	path, err := w.WriteDataset("email_data_20240105_153012", ds)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "email_data_20240105_153012.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.OutputColumns, records[0])
	assert.Equal(t, []string{"jane@x.com", "bob@y.com", "x.com", "2024-01-05 00:00:00", "Hello", "World"}, records[1])
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFileWriter(dir, zap.NewNop())
	require.NoError(t, err)

	path, err := w.WriteReport("email_data_20240105_153012", "Processing Report\nTotal rows initially loaded: 1\n")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_report.txt"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total rows initially loaded: 1")
}
