// pkg/cleaner/junk.go
package cleaner

import (
	"regexp"

	"github.com/emailops/email-ingress/pkg/model"
)

// garblePattern matches OCR/garbled artifacts: four or more letters
// followed by one or more characters from the restricted set {f, A-Z, ?}.
var garblePattern = regexp.MustCompile(`^[A-Za-z]{4,}[fA-Z?]+$`)

// junkTextColumns are the columns whose content decides the junk-text rule.
var junkTextColumns = []string{model.ColSender, model.ColSubject, model.ColBody}

// IsJunkText reports whether a single cleaned field reads as noise. The
// three sub-checks are independent and any one of them is enough: the
// missing-value sentinel, the garble pattern, or a single character
// repeated across the whole field.
func IsJunkText(text string) bool {
	if text == model.Null {
		return true
	}
	if matchesGarblePattern(text) {
		return true
	}
	return isRepeatedCharacter(text)
}

// matchesGarblePattern checks the restricted-alphabet suffix heuristic,
// e.g. "AAAAfAAAA".
func matchesGarblePattern(text string) bool {
	return garblePattern.MatchString(text)
}

// isRepeatedCharacter reports whether the field is one character repeated
// for its entire length, e.g. "aaaaaaaa". An empty string has zero distinct
// characters, not one, and is never flagged.
func isRepeatedCharacter(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	first := runes[0]
	for _, r := range runes[1:] {
		if r != first {
			return false
		}
	}
	return true
}

// IsJunkRow decides whether a fully-cleaned record is noise. A row is junk
// when a strict majority of its output fields are the sentinel, or when any
// of Sender, Subject, or Body trips the junk-text heuristic.
func IsJunkRow(row model.Record) bool {
	if isMajorityNull(row) {
		return true
	}
	for _, col := range junkTextColumns {
		if IsJunkText(row.Get(col)) {
			return true
		}
	}
	return false
}

// isMajorityNull checks whether sentinel fields outnumber present ones
// across the output columns (strict majority: count > fields/2).
func isMajorityNull(row model.Record) bool {
	nulls := 0
	for _, col := range model.OutputColumns {
		if row.IsNull(col) {
			nulls++
		}
	}
	return nulls*2 > len(model.OutputColumns)
}

// JunkReason names which rule removed a row, for the audit trail. Empty
// string means the row is not junk.
func JunkReason(row model.Record) string {
	if isMajorityNull(row) {
		return model.ReasonMajorityNull
	}
	for _, col := range junkTextColumns {
		if IsJunkText(row.Get(col)) {
			return model.ReasonJunkText
		}
	}
	return ""
}
