// pkg/pipeline/run.go
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run identifies one pipeline invocation. Every run gets a fresh UUID and a
// timestamped label; nothing is shared between runs.
type Run struct {
	ID        string    // Unique run identifier
	StartedAt time.Time // Run creation timestamp
}

// NewRun creates a run stamped with the current time.
func NewRun() Run {
	return Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// Label returns the timestamped label used in output file names, e.g.
// "email_data_20240105_153012".
func (r Run) Label() string {
	return fmt.Sprintf("email_data_%s", r.StartedAt.Format("20060102_150405"))
}

// Timestamp returns the run timestamp in the report header form.
func (r Run) Timestamp() string {
	return r.StartedAt.Format("20060102_150405")
}
