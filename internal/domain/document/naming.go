// Package document defines the naming convention for generated PDFs and
// the contracts for storing, retrieving and rendering them.
//
// Every generated file is named {Prefix}_{Subject}_{Timestamp}.pdf, where
// the prefix identifies the document kind, the subject is an employee ID
// (salary slips) or a role name with spaces folded to underscores (job
// descriptions), and the timestamp has second resolution. "Latest document
// for subject X" means the matching file with the greatest creation time.
package document

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindSalarySlip Kind = "SalarySlip"
	KindJD         Kind = "JD"
)

// TimestampLayout is the second-resolution stamp embedded in file names.
const TimestampLayout = "20060102150405"

// Prefix returns the file-name prefix for the kind.
func (k Kind) Prefix() string {
	return string(k)
}

// NormalizeSubject folds a subject into its file-name form. Role names
// carry spaces; employee IDs are used verbatim.
func NormalizeSubject(kind Kind, subject string) string {
	if kind == KindJD {
		return strings.ReplaceAll(subject, " ", "_")
	}
	return subject
}

// SubjectFromName reverses NormalizeSubject for a JD file-name segment.
func SubjectFromName(segment string) string {
	return strings.ReplaceAll(segment, "_", " ")
}

// BuildName derives the deterministic file name for one generated
// document.
func BuildName(kind Kind, subject string, t time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf", kind.Prefix(), NormalizeSubject(kind, subject), t.Format(TimestampLayout))
}
