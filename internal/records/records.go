// =============================================================================
// NACHA Validator - Record Classification
// =============================================================================
//
// This module tokenizes raw ACH file text into lines and classifies each line
// by its record type. A NACHA file is line-oriented: every substantive line is
// a 94-character fixed-width record whose first character identifies the
// record type.
//
// LINE CLASSES:
//   - Blank lines (length 0) are not records at all. A single trailing blank
//     line from a final newline is tolerated; interior blanks are defects,
//     which the validation engine reports.
//   - Padding lines are exactly 94 nines. They fill out the final physical
//     block and are skipped by field validation but still counted toward the
//     block-count computation.
//   - Everything else is a typed record, identified by its leading character.
//
// =============================================================================

package records

import "strings"

// RecordLength is the fixed width of every NACHA record.
const RecordLength = 94

// =============================================================================
// RECORD KINDS
// =============================================================================

// Kind identifies the type of a NACHA record line.
type Kind int

const (
	// KindUnknown is any non-blank, non-padding line whose leading character
	// is not a valid record type digit.
	KindUnknown Kind = iota

	// KindFileHeader is the '1' record opening the file.
	KindFileHeader

	// KindBatchHeader is the '5' record opening a batch.
	KindBatchHeader

	// KindEntryDetail is the '6' record carrying a single payment.
	KindEntryDetail

	// KindAddenda is the '7' record carrying supplementary payment data.
	KindAddenda

	// KindBatchControl is the '8' record closing a batch with its totals.
	KindBatchControl

	// KindFileControl is the '9' record closing the file with its totals.
	KindFileControl

	// KindPadding is a 94-character all-nines block filler line.
	KindPadding
)

// String returns the display name of the record kind.
func (k Kind) String() string {
	switch k {
	case KindFileHeader:
		return "File Header"
	case KindBatchHeader:
		return "Batch Header"
	case KindEntryDetail:
		return "Entry Detail"
	case KindAddenda:
		return "Addenda"
	case KindBatchControl:
		return "Batch Control"
	case KindFileControl:
		return "File Control"
	case KindPadding:
		return "Padding"
	default:
		return "Unknown"
	}
}

// TypeChar returns the record type digit for the kind, or 0 for kinds that
// have no single type digit (Padding, Unknown).
func (k Kind) TypeChar() byte {
	switch k {
	case KindFileHeader:
		return '1'
	case KindBatchHeader:
		return '5'
	case KindEntryDetail:
		return '6'
	case KindAddenda:
		return '7'
	case KindBatchControl:
		return '8'
	case KindFileControl:
		return '9'
	default:
		return 0
	}
}

// KindForType maps a record type character to its Kind. Characters outside
// {1,5,6,7,8,9} map to KindUnknown.
func KindForType(c byte) Kind {
	switch c {
	case '1':
		return KindFileHeader
	case '5':
		return KindBatchHeader
	case '6':
		return KindEntryDetail
	case '7':
		return KindAddenda
	case '8':
		return KindBatchControl
	case '9':
		return KindFileControl
	default:
		return KindUnknown
	}
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// IsBlank reports whether the line is empty.
func IsBlank(line string) bool {
	return len(line) == 0
}

// IsPadding reports whether the line is a block filler: exactly 94
// characters, all of them the digit '9'.
func IsPadding(line string) bool {
	if len(line) != RecordLength {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '9' {
			return false
		}
	}
	return true
}

// Classify returns the Kind of a non-blank line. Padding takes priority over
// the leading character: a full line of nines is filler, not a File Control.
// Blank lines are not records; callers check IsBlank first.
func Classify(line string) Kind {
	if IsPadding(line) {
		return KindPadding
	}
	return KindForType(line[0])
}

// SplitLines splits raw file text into lines on CRLF or LF boundaries.
// Line indices in diagnostics refer to positions in the returned slice.
// A trailing newline yields a final empty element, which downstream passes
// tolerate as the customary end-of-file blank.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsNumeric reports whether s is non-empty and consists only of ASCII digits.
func IsNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
