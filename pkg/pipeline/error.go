// pkg/pipeline/error.go
package pipeline

import "fmt"

// DegradationCategory classifies non-fatal per-field failures. Degradations
// are absorbed locally: the field becomes the sentinel and the batch keeps
// going. Only the initial load can abort a run.
type DegradationCategory int

const (
	DegradationNone DegradationCategory = iota
	// DegradationFieldExtraction is an unparseable address degraded to the sentinel.
	DegradationFieldExtraction
	// DegradationDateParse is an unparseable date degraded to the sentinel.
	DegradationDateParse
	// DegradationJunkRow is a row detected as noise and removed, tallied in
	// statistics and never surfaced as an error.
	DegradationJunkRow
)

// String returns a string representation of the degradation category.
func (dc DegradationCategory) String() string {
	switch dc {
	case DegradationNone:
		return "None"
	case DegradationFieldExtraction:
		return "FieldExtraction"
	case DegradationDateParse:
		return "DateParse"
	case DegradationJunkRow:
		return "JunkRow"
	default:
		return fmt.Sprintf("Unknown(%d)", dc)
	}
}
