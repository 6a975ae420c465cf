// pkg/model/record.go
package model

import "strings"

// Null is the sentinel for a missing or unparseable value. It is distinct
// from the empty string: an empty string is a present-but-blank field.
const Null = "NULL"

// MaxBodyLength is the character cap applied to the Body column after
// cleaning. The sentinel is never truncated.
const MaxBodyLength = 1000

// Standardized column names.
const (
	ColSender       = "Sender"
	ColRecipient    = "Recipient"
	ColSenderDomain = "SenderDomain"
	ColDate         = "Date"
	ColSubject      = "Subject"
	ColBody         = "Body"
)

// ColumnMapping maps source headers (compared case-insensitively) to
// standardized column names.
var ColumnMapping = map[string]string{
	"from":    ColSender,
	"to":      ColRecipient,
	"date":    ColDate,
	"subject": ColSubject,
	"body":    ColBody,
}

// OutputColumns is the fixed column order of the cleaned dataset.
var OutputColumns = []string{
	ColSender,
	ColRecipient,
	ColSenderDomain,
	ColDate,
	ColSubject,
	ColBody,
}

// Record is a single row keyed by column name. Before column mapping the
// keys are raw source headers; afterwards they are standardized names.
type Record map[string]string

// Get returns the value for a column, or the Null sentinel when the column
// is absent.
func (r Record) Get(col string) string {
	if v, ok := r[col]; ok {
		return v
	}
	return Null
}

// IsNull reports whether a column holds the missing-value sentinel or is
// absent entirely.
func (r Record) IsNull(col string) bool {
	return r.Get(col) == Null
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered sequence of records plus the column order they were
// loaded with. Row order from the source is preserved except for removed
// junk rows.
type Dataset struct {
	Columns []string
	Rows    []Record
}

// NewDataset creates an empty dataset with the given column order.
func NewDataset(columns []string) *Dataset {
	return &Dataset{
		Columns: columns,
		Rows:    make([]Record, 0),
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Append adds a row to the dataset.
func (d *Dataset) Append(row Record) {
	d.Rows = append(d.Rows, row)
}

// HasColumn reports whether the dataset carries a column, compared
// case-insensitively the way source headers are.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if strings.EqualFold(col, name) {
			return true
		}
	}
	return false
}
