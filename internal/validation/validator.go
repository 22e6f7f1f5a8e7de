// =============================================================================
// NACHA Validator - Validation Engine
// =============================================================================
//
// This module is the single-pass scanner at the heart of the validator. It
// folds over the classified lines of an ACH file, maintaining an explicit
// scan state and running totals, and emits diagnostics for every structural,
// syntactic, cross-reference, and reconciliation defect it finds.
//
// VALIDATION STRATEGY:
//   Rules are evaluated independently against best-effort state:
//   1. Structural: record ordering, batch open/close pairing, mandatory
//      File Header and File Control records.
//   2. Syntactic: record length, leading type character, numeric fields,
//      date/time formats.
//   3. Cross-reference: Batch Control fields against the Batch Header
//      snapshot; IAT-specific mandatory fields.
//   4. Reconciliation: declared counts, entry hash, debit/credit sums, and
//      block count against the computed totals.
//
// ERROR HANDLING:
//   - Diagnostics are collected, never thrown: one malformed record cannot
//     suppress findings elsewhere, and a single line may carry several
//     diagnostics (wrong length and a bad field, for example).
//   - An invalid amount contributes nothing to the sums instead of aborting
//     the batch.
//   - Severity is user-facing urgency only; the engine handles all
//     severities identically.
//
// The engine is a pure function of the input text: no I/O, no shared state,
// safe to call concurrently from separate goroutines.
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rvrn22/nacha-validate/internal/records"
	"github.com/rvrn22/nacha-validate/internal/schema"
	"github.com/rvrn22/nacha-validate/internal/types"
)

var (
	reDate = regexp.MustCompile(`^\d{6}$`)
	reTime = regexp.MustCompile(`^\d{4}$`)
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls the severities of findings whose urgency legitimately
// varies between originators. Real-world files disagree on blocking and
// trailing-filler conventions, so these are policy, not hard rules.
type Options struct {
	// OverlongRecord is the severity of a record longer than 94 characters.
	// Default: Hint (trailing filler is tolerated).
	OverlongRecord types.Severity

	// BlockCountMismatch is the severity of a declared block count that
	// disagrees with the computed one. Default: Warning.
	BlockCountMismatch types.Severity

	// MalformedCreationTime is the severity of a present but malformed
	// File Creation Time. Default: Warning (the field is optional).
	MalformedCreationTime types.Severity
}

// DefaultOptions returns the default severity policy.
func DefaultOptions() Options {
	return Options{
		OverlongRecord:        types.SeverityHint,
		BlockCountMismatch:    types.SeverityWarning,
		MalformedCreationTime: types.SeverityWarning,
	}
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator validates ACH file text. It holds only configuration; every
// Validate call is independent and carries its own state.
type Validator struct {
	opts Options
}

// NewValidator creates a Validator with the given severity policy.
func NewValidator(opts Options) *Validator {
	return &Validator{opts: opts}
}

// Validate runs full validation with the default severity policy.
// This is the main entry point for callers without configuration.
func Validate(text string) []types.Diagnostic {
	return NewValidator(DefaultOptions()).Validate(text)
}

// Result aggregates a validation run for reporting.
type Result struct {
	// Valid is true when no Error-severity diagnostic was emitted.
	Valid bool

	// Diagnostics holds every finding in scan order.
	Diagnostics []types.Diagnostic

	// ErrorCount and WarningCount break the findings down by severity.
	ErrorCount   int
	WarningCount int
}

// Check validates the text and wraps the diagnostics in a Result.
func (v *Validator) Check(text string) *Result {
	diags := v.Validate(text)
	result := &Result{Valid: true, Diagnostics: diags}
	for _, d := range diags {
		switch d.Severity {
		case types.SeverityError:
			result.ErrorCount++
			result.Valid = false
		case types.SeverityWarning:
			result.WarningCount++
		}
	}
	return result
}

// =============================================================================
// SCAN STATE
// =============================================================================

// scanState is the explicit state of the forward pass. Illegal record
// orderings are detected as transitions that are not defined for the
// current state.
type scanState int

const (
	// stateBeforeFile: nothing accepted yet; only a File Header is in order.
	stateBeforeFile scanState = iota

	// stateInFile: inside the file, between batches.
	stateInFile

	// stateInBatch: a batch is open; entries and addenda are in order.
	stateInBatch

	// stateAfterFile: a File Control has been seen; only padding and a
	// trailing blank may follow.
	stateAfterFile
)

// scan is the per-call state of one validation pass.
type scan struct {
	opts  Options
	diags []types.Diagnostic

	state           scanState
	seenFileHeader  bool
	seenFileControl bool

	file  fileTotals
	batch *batchTotals

	// sec is the SEC code context: set when a Batch Header opens a batch,
	// cleared when the Batch Control closes it.
	sec string

	// recordLines is the number of non-blank lines (padding included),
	// the basis of the block-count computation.
	recordLines int
}

// Validate runs the single forward pass over the file text and returns the
// diagnostics in emission order. It never fails: malformed input produces
// diagnostics, empty input produces an empty list.
func (v *Validator) Validate(text string) []types.Diagnostic {
	diags := make([]types.Diagnostic, 0)

	lines := records.SplitLines(text)

	// A first sweep locates the last non-blank line (a single trailing
	// blank from a final newline is customary, interior blanks are not)
	// and counts record lines for the block-count check.
	lastContent := -1
	recordLines := 0
	for i, line := range lines {
		if !records.IsBlank(line) {
			lastContent = i
			recordLines++
		}
	}
	if lastContent < 0 {
		// Nothing but emptiness; not even the mandatory-record checks apply.
		return diags
	}

	s := &scan{
		opts:        v.opts,
		diags:       diags,
		state:       stateBeforeFile,
		recordLines: recordLines,
	}

	for i, line := range lines {
		if records.IsBlank(line) {
			if i < lastContent {
				s.errorf(i, 0, 1, "Blank line inside file")
			}
			continue
		}

		kind := records.Classify(line)
		if kind == records.KindPadding {
			// Block filler: no structural or field validation, but already
			// counted toward recordLines above.
			continue
		}

		if s.state == stateAfterFile {
			s.errorf(i, 0, 1, "Unexpected %s record after File Control", kind)
		}

		s.checkLength(i, line)

		switch kind {
		case records.KindFileHeader:
			s.fileHeader(i, line)
		case records.KindBatchHeader:
			s.batchHeader(i, line)
		case records.KindEntryDetail:
			s.entryDetail(i, line)
		case records.KindAddenda:
			s.addenda(i, line)
		case records.KindBatchControl:
			s.batchControl(i, line)
		case records.KindFileControl:
			s.fileControl(i, line)
		default:
			s.errorf(i, 0, 1, "Unknown record type '%c'. Expected one of 1, 5, 6, 7, 8, 9", line[0])
		}
	}

	// Post-pass: mandatory file boundary records.
	if !s.seenFileHeader {
		s.errorf(0, 0, 1, "Missing File Header record")
	}
	if !s.seenFileControl {
		s.errorf(lastContent, 0, 1, "Missing File Control record")
	}

	return s.diags
}

// =============================================================================
// PER-RECORD RULES
// =============================================================================

// checkLength enforces the fixed 94-character record width. Short records
// are errors; overlong records carry the configured tolerance severity since
// some originators pad lines with trailing filler.
func (s *scan) checkLength(i int, line string) {
	switch {
	case len(line) < records.RecordLength:
		s.errorf(i, 0, len(line), "Record must be exactly %d characters long (found %d)", records.RecordLength, len(line))
	case len(line) > records.RecordLength:
		s.add(i, records.RecordLength, len(line), s.opts.OverlongRecord,
			fmt.Sprintf("Record is longer than %d characters (found %d); trailing characters are ignored", records.RecordLength, len(line)))
	}
}

// fileHeader handles the '1' record: position, uniqueness, and the fixed
// header fields.
func (s *scan) fileHeader(i int, line string) {
	if s.seenFileHeader {
		s.errorf(i, 0, 1, "Duplicate File Header record")
	} else if i != 0 {
		s.errorf(i, 0, 1, "File Header must be the first record in the file")
	}
	s.seenFileHeader = true
	if s.state == stateBeforeFile {
		s.state = stateInFile
	}

	if f := field(line, 1, 3); f != "01" {
		s.errorf(i, 1, 3, "Priority Code must be '01' (found '%s')", f)
	}
	if trimmed(line, 3, 13) == "" {
		s.errorf(i, 3, 13, "Immediate Destination must not be blank")
	}
	if trimmed(line, 13, 23) == "" {
		s.errorf(i, 13, 23, "Immediate Origin must not be blank")
	}
	if f := field(line, 23, 29); !reDate.MatchString(f) {
		s.errorf(i, 23, 29, "File Creation Date must be six digits, YYMMDD (found '%s')", f)
	}
	if f := field(line, 29, 33); strings.TrimSpace(f) != "" && !reTime.MatchString(f) {
		s.add(i, 29, 33, s.opts.MalformedCreationTime,
			fmt.Sprintf("File Creation Time should be four digits, HHMM (found '%s')", f))
	}
	if f := field(line, 34, 37); f != "094" {
		s.errorf(i, 34, 37, "Record Size must be '094' (found '%s')", f)
	}
	if f := field(line, 37, 39); f != "10" {
		s.errorf(i, 37, 39, "Blocking Factor must be '10' (found '%s')", f)
	}
	if f := field(line, 39, 40); f != "1" {
		s.errorf(i, 39, 40, "Format Code must be '1' (found '%s')", f)
	}
}

// batchHeader handles the '5' record: ordering, the SEC code context, and
// the header fields. The batch is opened even after an ordering error so
// later records still reconcile best-effort.
func (s *scan) batchHeader(i int, line string) {
	s.file.batchCount++

	if !s.seenFileHeader {
		s.errorf(i, 0, 1, "Batch Header before File Header")
	}
	if s.state == stateInBatch {
		s.errorf(i, 0, 1, "Batch Header encountered while the previous batch is still open (batches cannot nest)")
	}

	sec := trimmed(line, 50, 53)
	s.sec = sec
	s.batch = &batchTotals{
		headerLine:   i,
		serviceClass: trimmed(line, 1, 4),
		companyID:    trimmed(line, 40, 50),
		odfiID:       trimmed(line, 79, 87),
		batchNumber:  trimmed(line, 87, 94),
		secCode:      sec,
	}
	s.state = stateInBatch

	svc := field(line, 1, 4)
	if sec == schema.SECCodeIAT {
		if svc != "200" && svc != "220" && svc != "225" {
			s.errorf(i, 1, 4, "Service Class Code must be 200, 220, or 225 for IAT batches (found '%s')", svc)
		}
		if ind := trimmed(line, 4, 20); ind != "IAT" {
			s.errorf(i, 4, 20, "IAT Indicator must read 'IAT' (found '%s')", ind)
		}
	} else if svc != "200" && svc != "220" && svc != "225" && svc != "280" {
		s.errorf(i, 1, 4, "Service Class Code must be one of 200, 220, 225, 280 (found '%s')", svc)
	}

	if f := field(line, 69, 75); !reDate.MatchString(f) {
		s.errorf(i, 69, 75, "Effective Entry Date must be six digits, YYMMDD (found '%s')", f)
	}
	if f := field(line, 78, 79); f != "1" {
		s.errorf(i, 78, 79, "Originator Status Code must be '1' (found '%s')", f)
	}
}

// entryDetail handles the '6' record: amount and hash accumulation, the
// check digit, and the addenda indicator rules (IAT and domestic).
func (s *scan) entryDetail(i int, line string) {
	if s.state != stateInBatch {
		s.errorf(i, 0, 1, "Entry Detail record outside of an open batch")
	}

	s.file.entryAddendaCount++
	if s.batch != nil {
		s.batch.entryAddendaCount++
	}

	// Amount, routed by the transaction code's second digit: 0-4 credit,
	// 5-9 debit. A malformed amount contributes nothing to the sums.
	amountField := field(line, 29, 39)
	if !records.IsNumeric(amountField) || len(amountField) != 10 {
		s.errorf(i, 29, 39, "Amount must be ten numeric digits (found '%s')", amountField)
	} else {
		amount, _ := strconv.ParseInt(amountField, 10, 64)
		if txn := field(line, 1, 3); len(txn) == 2 {
			switch d := txn[1]; {
			case d >= '0' && d <= '4':
				s.file.creditCents += amount
				if s.batch != nil {
					s.batch.creditCents += amount
				}
			case d >= '5' && d <= '9':
				s.file.debitCents += amount
				if s.batch != nil {
					s.batch.debitCents += amount
				}
			}
		}
	}

	// Routing prefix: hash accumulation plus the ABA check digit.
	rdfi := field(line, 3, 11)
	if len(rdfi) != 8 || !records.IsNumeric(rdfi) {
		s.errorf(i, 3, 11, "Receiving DFI Identification must be eight numeric digits (found '%s')", rdfi)
	} else {
		routing, _ := strconv.ParseUint(rdfi, 10, 64)
		s.file.entryHash = addHash(s.file.entryHash, routing)
		if s.batch != nil {
			s.batch.entryHash = addHash(s.batch.entryHash, routing)
		}

		want := records.CheckDigit(rdfi)
		if got := field(line, 11, 12); got != strconv.Itoa(want) {
			s.errorf(i, 11, 12, "Invalid Check Digit: expected %d for routing prefix %s (found '%s')", want, rdfi, got)
		}
	}

	ind := field(line, 78, 79)
	if s.sec == schema.SECCodeIAT {
		if ind != "1" {
			s.errorf(i, 78, 79, "Addenda Record Indicator must be '1' for IAT entries (found '%s')", ind)
		}
		raw := trimmed(line, 12, 16)
		if count, err := strconv.Atoi(raw); err != nil || count < 7 {
			s.errorf(i, 12, 16, "IAT entries must declare at least 7 addenda records (found '%s')", raw)
		}
	} else if ind != "0" && ind != "1" {
		s.errorf(i, 78, 79, "Addenda Record Indicator must be '0' or '1' (found '%s')", ind)
	}
}

// addenda handles the '7' record. Addenda count toward the same entry/addenda
// totals as entries; the domestic path has no further field rules, and the
// IAT sub-type layouts are presentation data owned by the schema registry.
func (s *scan) addenda(i int, line string) {
	if s.state != stateInBatch {
		s.errorf(i, 0, 1, "Addenda record outside of an open batch")
	}

	s.file.entryAddendaCount++
	if s.batch != nil {
		s.batch.entryAddendaCount++
	}
}

// batchControl handles the '8' record: closes the batch and cross-checks the
// declared fields and totals against the accumulated batch state.
func (s *scan) batchControl(i int, line string) {
	if s.state != stateInBatch || s.batch == nil {
		s.errorf(i, 0, 1, "Batch Control without a matching Batch Header")
		return
	}

	b := s.batch

	// Fields that must agree with the Batch Header snapshot.
	s.compareField(i, line, 1, 4, "Service Class Code", b.serviceClass)
	s.compareField(i, line, 44, 54, "Company Identification", b.companyID)
	s.compareField(i, line, 79, 87, "Originating DFI Identification", b.odfiID)
	s.compareField(i, line, 87, 94, "Batch Number", b.batchNumber)

	// Declared totals against computed ones.
	s.compareCount(i, line, 4, 10, "Entry/Addenda Count", b.entryAddendaCount)
	s.compareHash(i, line, 10, 20, b.entryHash)
	s.compareAmount(i, line, 20, 32, "Total Debit Entry Dollar Amount", b.debitCents)
	s.compareAmount(i, line, 32, 44, "Total Credit Entry Dollar Amount", b.creditCents)

	s.batch = nil
	s.sec = ""
	s.state = stateInFile
}

// fileControl handles the '9' record: closes the file and cross-checks the
// file-level totals. Anything substantive after it is flagged by the
// after-file state check in the main loop.
func (s *scan) fileControl(i int, line string) {
	if !s.seenFileHeader {
		s.errorf(i, 0, 1, "File Control without a File Header")
	}
	if s.state == stateInBatch {
		s.errorf(i, 0, 1, "File Control encountered while a batch is still open (missing Batch Control)")
		s.batch = nil
		s.sec = ""
	}
	s.seenFileControl = true
	s.state = stateAfterFile

	s.compareCount(i, line, 1, 7, "Batch Count", s.file.batchCount)

	// Block count: ceil(recordLines / 10), compared at the configured
	// tolerance severity since blocking conventions vary in the wild.
	blockCount := (s.recordLines + 9) / 10
	raw := trimmed(line, 7, 13)
	if !records.IsNumeric(raw) {
		s.errorf(i, 7, 13, "Block Count must be numeric (found '%s')", raw)
	} else if declared, _ := strconv.Atoi(raw); declared != blockCount {
		s.add(i, 7, 13, s.opts.BlockCountMismatch,
			fmt.Sprintf("Block Count mismatch: declared %d, computed %d", declared, blockCount))
	}

	s.compareCount(i, line, 13, 21, "Entry/Addenda Count", s.file.entryAddendaCount)
	s.compareHash(i, line, 21, 31, s.file.entryHash)
	s.compareAmount(i, line, 31, 43, "Total Debit Entry Dollar Amount", s.file.debitCents)
	s.compareAmount(i, line, 43, 55, "Total Credit Entry Dollar Amount", s.file.creditCents)
}

// =============================================================================
// CROSS-CHECK HELPERS
// =============================================================================

// compareField checks a control field against its Batch Header snapshot,
// naming the expected value on mismatch.
func (s *scan) compareField(i int, line string, start, end int, name, want string) {
	if got := trimmed(line, start, end); got != want {
		s.errorf(i, start, end, "%s mismatch: expected '%s' from the Batch Header, found '%s'", name, want, got)
	}
}

// compareCount checks a declared record count against the computed one.
func (s *scan) compareCount(i int, line string, start, end int, name string, computed int) {
	raw := trimmed(line, start, end)
	if !records.IsNumeric(raw) {
		s.errorf(i, start, end, "%s must be numeric (found '%s')", name, raw)
		return
	}
	if declared, _ := strconv.Atoi(raw); declared != computed {
		s.errorf(i, start, end, "%s mismatch: declared %d, computed %d", name, declared, computed)
	}
}

// compareHash checks the declared entry hash against the accumulated one,
// reduced to its ten low-order decimal digits before comparison.
func (s *scan) compareHash(i int, line string, start, end int, hash uint64) {
	computed := hash % entryHashModulus
	raw := trimmed(line, start, end)
	if !records.IsNumeric(raw) {
		s.errorf(i, start, end, "Entry Hash must be numeric (found '%s')", raw)
		return
	}
	if declared, _ := strconv.ParseUint(raw, 10, 64); declared != computed {
		s.errorf(i, start, end, "Entry Hash mismatch: declared %s, computed %010d", raw, computed)
	}
}

// compareAmount checks a declared dollar total (in cents) against the
// accumulated one, rendering both to two decimals.
func (s *scan) compareAmount(i int, line string, start, end int, name string, cents int64) {
	raw := trimmed(line, start, end)
	if !records.IsNumeric(raw) {
		s.errorf(i, start, end, "%s must be numeric (found '%s')", name, raw)
		return
	}
	if declared, _ := strconv.ParseInt(raw, 10, 64); declared != cents {
		s.errorf(i, start, end, "%s mismatch: declared $%.2f, computed $%.2f",
			name, float64(declared)/100, float64(cents)/100)
	}
}

// =============================================================================
// DIAGNOSTIC EMISSION
// =============================================================================

// add appends a diagnostic at the given location and severity.
func (s *scan) add(line, startCol, endCol int, severity types.Severity, message string) {
	s.diags = append(s.diags, types.Diagnostic{
		Line:     line,
		StartCol: startCol,
		EndCol:   endCol,
		Message:  message,
		Severity: severity,
	})
}

// errorf appends an Error-severity diagnostic with a formatted message.
func (s *scan) errorf(line, startCol, endCol int, format string, args ...any) {
	s.add(line, startCol, endCol, types.SeverityError, fmt.Sprintf(format, args...))
}

// =============================================================================
// FIELD EXTRACTION
// =============================================================================

// field returns the [start,end) slice of the line, clipped to the line's
// actual length so short records never panic; absent positions read as "".
func field(line string, start, end int) string {
	if len(line) <= start {
		return ""
	}
	if len(line) < end {
		end = len(line)
	}
	return line[start:end]
}

// trimmed returns the field with surrounding spaces removed.
func trimmed(line string, start, end int) string {
	return strings.TrimSpace(field(line, start, end))
}
