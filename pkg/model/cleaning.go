// pkg/model/cleaning.go
package model

import (
	"time"
)

// CleaningOperation represents a single field-level cleaning event: a value
// degraded to the sentinel, a truncation, or a junk-row removal.
type CleaningOperation struct {
	RunID             string    // Run this operation belongs to
	ColumnName        string    // Column that was cleaned
	OriginalValue     string    // Value before cleaning
	NewValue          string    // Value after cleaning
	RowIndex          int       // Zero-based position in the source dataset
	CleaningOperation string    // Type of cleaning performed (e.g., "date_normalization")
	CleaningReason    string    // Reason for cleaning (e.g., "unparseable_date")
	CleanedAt         time.Time // When the cleaning occurred (set by database)
}

// Well-known operation and reason labels, used both in logs and in the
// audit table.
const (
	OpAddressExtraction = "address_extraction"
	OpDateNormalization = "date_normalization"
	OpTextCleaning      = "text_cleaning"
	OpBodyTruncation    = "body_truncation"
	OpJunkRemoval       = "junk_removal"

	ReasonUnparseableAddress = "unparseable_address"
	ReasonUnparseableDate    = "unparseable_date"
	ReasonNonPortableChars   = "non_portable_characters"
	ReasonBodyTooLong        = "body_over_limit"
	ReasonMajorityNull       = "majority_null_fields"
	ReasonJunkText           = "junk_text_pattern"
)
