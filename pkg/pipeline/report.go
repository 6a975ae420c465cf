// pkg/pipeline/report.go
package pipeline

import (
	"fmt"
	"strings"

	"github.com/emailops/email-ingress/pkg/model"
)

// sampleRows is how many cleaned rows the report previews.
const sampleRows = 5

// GenerateReport renders the run statistics and a small data sample into
// the human-readable processing report.
func GenerateReport(run Run, res *Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Processing Report (%s)\n", run.Timestamp())
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&sb, "Total rows initially loaded: %d\n", res.Stats.InitialRowCount)
	fmt.Fprintf(&sb, "Rows removed as junk: %d\n", res.Stats.JunkRowCount)

	sb.WriteString("NULL value counts and percentages:\n")
	for _, col := range model.OutputColumns {
		fmt.Fprintf(&sb, "  %s: %d (%.2f%%)\n",
			col, res.Stats.NullCounts[col], res.Stats.NullPercentages[col])
	}

	fmt.Fprintf(&sb, "Output Columns: %s\n", strings.Join(model.OutputColumns, ", "))

	sb.WriteString(fmt.Sprintf("Sample Processed Data (First %d Rows):\n", sampleRows))
	sb.WriteString(formatSample(res.Data))

	return sb.String()
}

// formatSample renders up to sampleRows rows as an aligned text table.
func formatSample(ds *model.Dataset) string {
	n := ds.Len()
	if n > sampleRows {
		n = sampleRows
	}

	widths := make([]int, len(model.OutputColumns))
	for i, col := range model.OutputColumns {
		widths[i] = len(col)
		for _, row := range ds.Rows[:n] {
			if l := len(cellValue(row, col)); l > widths[i] {
				widths[i] = l
			}
		}
	}

	var sb strings.Builder
	for i, col := range model.OutputColumns {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%-*s", widths[i], col)
	}
	sb.WriteString("\n")

	for _, row := range ds.Rows[:n] {
		for i, col := range model.OutputColumns {
			if i > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%-*s", widths[i], cellValue(row, col))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// cellValue truncates long cells so the sample stays readable.
func cellValue(row model.Record, col string) string {
	const cellCap = 40
	v := row.Get(col)
	if len(v) > cellCap {
		return v[:cellCap-3] + "..."
	}
	return v
}
