// =============================================================================
// NACHA Validator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - validation
//   - summary
//   - report
//
// Everything here is a plain value type. Diagnostics are output-only: the
// engine produces them in scan order and never deduplicates or mutates them
// afterwards.
//
// =============================================================================

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// =============================================================================
// SEVERITY
// =============================================================================

// Severity communicates user-facing urgency of a diagnostic. The engine
// treats all severities identically (collected, never acted upon); consumers
// decide how each level is surfaced.
type Severity int

const (
	// SeverityError marks a structural, syntactic, or reconciliation defect.
	SeverityError Severity = iota

	// SeverityWarning marks findings that vary between originators in
	// practice (for example block-count conventions).
	SeverityWarning

	// SeverityInformation marks purely informational findings.
	SeverityInformation

	// SeverityHint marks low-priority tolerated irregularities, such as
	// trailing filler beyond the fixed record length.
	SeverityHint
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	case SeverityHint:
		return "hint"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalJSON encodes the severity as its lowercase name so machine-readable
// output is stable across releases.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseSeverity converts a severity name from configuration into a Severity.
// Matching is case-insensitive.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "information", "info":
		return SeverityInformation, nil
	case "hint":
		return SeverityHint, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q (expected error, warning, information, or hint)", name)
	}
}

// =============================================================================
// DIAGNOSTIC
// =============================================================================

// Diagnostic describes a single defect found in an ACH file, located by
// 0-based line index and a half-open column range on that line.
type Diagnostic struct {
	// Line is the 0-based index of the line the finding refers to.
	Line int `json:"line"`

	// StartCol is the 0-based column where the finding begins.
	StartCol int `json:"startCol"`

	// EndCol is the column just past the end of the finding.
	EndCol int `json:"endCol"`

	// Message is the human-readable description of the finding.
	Message string `json:"message"`

	// Severity is the urgency of the finding.
	Severity Severity `json:"severity"`
}

// String formats the diagnostic for plain console or log output.
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d, col %d-%d [%s] %s", d.Line+1, d.StartCol, d.EndCol, d.Severity, d.Message)
}

// CountErrors returns the number of Error-severity diagnostics in the list.
func CountErrors(diags []Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary holds the lightweight aggregate view of an ACH file. Dollar values
// are the accumulated cent amounts divided by 100.
type Summary struct {
	// Batches is the number of Batch Header records in the file.
	Batches int `json:"batches"`

	// Entries is the number of Entry Detail records in the file.
	Entries int `json:"entries"`

	// TotalDebit is the sum of all debit entry amounts, in dollars.
	TotalDebit float64 `json:"totalDebit"`

	// TotalCredit is the sum of all credit entry amounts, in dollars.
	TotalCredit float64 `json:"totalCredit"`

	// NetAmount is TotalCredit - TotalDebit.
	NetAmount float64 `json:"netAmount"`
}
