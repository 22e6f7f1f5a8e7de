package validation

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/rvrn22/nacha-validate/internal/records"
	"github.com/rvrn22/nacha-validate/internal/types"
)

// =============================================================================
// RECORD BUILDERS
// =============================================================================
// Test files are assembled from builders rather than hand-counted literals
// so the declared control totals are derived the same way an originator
// derives them.

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func num(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func fileHeader() string {
	return "1" + "01" + " 076401251" + " 264716124" + "250102" + "0930" + "A" +
		"094" + "10" + "1" + pad("FIRST TEST BANK", 23) + pad("ACME PAYROLL", 23) + pad("", 8)
}

func batchHeader(svc, sec, companyID, odfi string, batchNum int64) string {
	return "5" + svc + pad("ACME CORP", 16) + pad("", 20) + pad(companyID, 10) + sec +
		pad("PAYROLL", 10) + pad("", 6) + "250103" + pad("", 3) + "1" + odfi + num(batchNum, 7)
}

func iatBatchHeader(svc, indicator, originatorID, odfi string, batchNum int64) string {
	return "5" + svc + pad(indicator, 16) + "FV" + "3" + pad("", 15) + "CA" +
		pad(originatorID, 10) + "IAT" + pad("TRADE PAY", 10) + "USD" + "CAD" +
		"250103" + pad("", 3) + "1" + odfi + num(batchNum, 7)
}

func entryDetail(txn, rdfi string, amount int64, addendaInd string) string {
	cd := strconv.Itoa(records.CheckDigit(rdfi))
	return "6" + txn + rdfi + cd + pad("123456789", 17) + num(amount, 10) +
		pad("ID-0001", 15) + pad("JANE DOE", 22) + pad("", 2) + addendaInd + pad("076401250000001", 15)
}

func iatEntryDetail(txn, rdfi string, addendaCount, amount int64, addendaInd string) string {
	cd := strconv.Itoa(records.CheckDigit(rdfi))
	return "6" + txn + rdfi + cd + num(addendaCount, 4) + pad("", 13) + num(amount, 10) +
		pad("123456789", 35) + pad("", 2) + "0" + "0" + addendaInd + pad("076401250000001", 15)
}

func addenda(typeCode string) string {
	return "7" + typeCode + pad("SUPPLEMENTARY DATA", 80) + num(1, 4) + num(1, 7)
}

func batchControl(svc string, count int64, hash uint64, debit, credit int64, companyID, odfi string, batchNum int64) string {
	return "8" + svc + num(count, 6) + fmt.Sprintf("%010d", hash%10_000_000_000) +
		num(debit, 12) + num(credit, 12) + pad(companyID, 10) + pad("", 19) + pad("", 6) +
		odfi + num(batchNum, 7)
}

func fileControl(batches, blocks, count int64, hash uint64, debit, credit int64) string {
	return "9" + num(batches, 6) + num(blocks, 6) + num(count, 8) +
		fmt.Sprintf("%010d", hash%10_000_000_000) + num(debit, 12) + num(credit, 12) + pad("", 39)
}

func join(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// goodFile is a fully reconciled single-batch PPD file: one credit entry of
// $123.45 to routing prefix 06100010.
func goodFile() string {
	return join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
}

// =============================================================================
// ASSERTION HELPERS
// =============================================================================

func requireContains(t *testing.T, diags []types.Diagnostic, substr string) types.Diagnostic {
	t.Helper()
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			return d
		}
	}
	t.Fatalf("no diagnostic containing %q; got %v", substr, diags)
	return types.Diagnostic{}
}

func requireNotContains(t *testing.T, diags []types.Diagnostic, substr string) {
	t.Helper()
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			t.Fatalf("unexpected diagnostic containing %q: %v", substr, d)
		}
	}
}

// =============================================================================
// RECORD LENGTH FIXTURES
// =============================================================================

func TestBuildersProduceFixedWidthRecords(t *testing.T) {
	lines := []string{
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		iatBatchHeader("220", "IAT", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		iatEntryDetail("22", "06100010", 7, 0, "1"),
		addenda("10"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	}
	for i, l := range lines {
		if len(l) != records.RecordLength {
			t.Errorf("builder %d produced %d characters, want %d: %q", i, len(l), records.RecordLength, l)
		}
	}
}

// =============================================================================
// END-TO-END SCENARIOS
// =============================================================================

func TestWellFormedFileYieldsNoDiagnostics(t *testing.T) {
	diags := Validate(goodFile())
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n", "\r\n\r\n"} {
		if diags := Validate(text); len(diags) != 0 {
			t.Errorf("Validate(%q) = %v, want empty", text, diags)
		}
	}
}

func TestUnknownRecordType(t *testing.T) {
	text := "2" + strings.Repeat("X", 93) + "\n"
	diags := Validate(text)
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %v", diags)
	}
	requireContains(t, diags, "Unknown record type '2'")
	requireContains(t, diags, "Missing File Header")
	requireContains(t, diags, "Missing File Control")
	for _, d := range diags {
		if d.Line != 0 {
			t.Errorf("diagnostic on line %d, want 0: %v", d.Line, d)
		}
	}
}

func TestDiagnosticsReferenceInputLines(t *testing.T) {
	inputs := []string{
		goodFile(),
		"garbage\n\nmore garbage",
		strings.Repeat("9", 94),
		"6" + strings.Repeat("?", 93),
	}
	for _, text := range inputs {
		n := len(records.SplitLines(text))
		for _, d := range Validate(text) {
			if d.Line < 0 || d.Line >= n {
				t.Errorf("diagnostic references line %d outside input of %d lines: %v", d.Line, n, d)
			}
		}
	}
}

// =============================================================================
// LENGTH RULES
// =============================================================================

func TestShortRecordLength(t *testing.T) {
	short := entryDetail("22", "06100010", 12345, "0")[:50]
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		short,
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	d := requireContains(t, diags, "Record must be exactly 94 characters")
	if d.Severity != types.SeverityError {
		t.Errorf("short record severity = %v, want error", d.Severity)
	}
	if d.Line != 2 {
		t.Errorf("short record diagnostic on line %d, want 2", d.Line)
	}
}

func TestOverlongRecordIsHint(t *testing.T) {
	lines := records.SplitLines(goodFile())
	lines[0] += "XX"
	diags := Validate(strings.Join(lines, "\n"))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if diags[0].Severity != types.SeverityHint {
		t.Errorf("overlong severity = %v, want hint", diags[0].Severity)
	}
	if diags[0].StartCol != records.RecordLength {
		t.Errorf("overlong diagnostic starts at col %d, want %d", diags[0].StartCol, records.RecordLength)
	}
}

func TestOverlongSeverityIsConfigurable(t *testing.T) {
	opts := DefaultOptions()
	opts.OverlongRecord = types.SeverityError
	lines := records.SplitLines(goodFile())
	lines[0] += "XX"
	diags := NewValidator(opts).Validate(strings.Join(lines, "\n"))
	if len(diags) != 1 || diags[0].Severity != types.SeverityError {
		t.Fatalf("expected 1 error diagnostic, got %v", diags)
	}
}

// =============================================================================
// STRUCTURAL RULES
// =============================================================================

func TestDuplicateFileHeader(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileHeader(),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	d := requireContains(t, diags, "Duplicate File Header")
	if d.Line != 4 {
		t.Errorf("duplicate header diagnostic on line %d, want 4", d.Line)
	}
}

func TestFileHeaderNotFirst(t *testing.T) {
	text := join(
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		fileHeader(),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	requireContains(t, diags, "Batch Header before File Header")
	requireContains(t, diags, "File Header must be the first record")
}

func TestBatchNesting(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		batchHeader("200", "PPD", "1234567890", "07640125", 2),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 2),
		fileControl(2, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	d := requireContains(t, diags, "batches cannot nest")
	if d.Line != 2 {
		t.Errorf("nesting diagnostic on line %d, want 2", d.Line)
	}
}

func TestBatchControlWithoutHeader(t *testing.T) {
	text := join(
		fileHeader(),
		batchControl("200", 0, 0, 0, 0, "", "07640125", 1),
		fileControl(0, 1, 0, 0, 0, 0),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "without a matching Batch Header")
}

func TestFileControlWhileBatchOpen(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "still open (missing Batch Control)")
}

func TestRecordsAfterFileControl(t *testing.T) {
	text := goodFile() + entryDetail("22", "06100010", 0, "0") + "\n"
	diags := Validate(text)
	requireContains(t, diags, "after File Control")
	requireContains(t, diags, "outside of an open batch")
}

func TestTrailingPaddingTolerated(t *testing.T) {
	padding := strings.Repeat(strings.Repeat("9", 94)+"\n", 5)
	diags := Validate(goodFile() + padding)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics with trailing padding, got %v", diags)
	}
}

func TestInteriorBlankLine(t *testing.T) {
	lines := records.SplitLines(goodFile())
	// Insert a blank between the entry and the batch control.
	withBlank := append([]string{}, lines[:3]...)
	withBlank = append(withBlank, "")
	withBlank = append(withBlank, lines[3:]...)
	diags := Validate(strings.Join(withBlank, "\n"))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	d := requireContains(t, diags, "Blank line inside file")
	if d.Line != 3 {
		t.Errorf("blank line diagnostic on line %d, want 3", d.Line)
	}
}

func TestMissingFileBoundaries(t *testing.T) {
	text := join(
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
	)
	diags := Validate(text)
	requireContains(t, diags, "Batch Header before File Header")
	requireContains(t, diags, "Missing File Header")
	requireContains(t, diags, "Missing File Control")
}

// =============================================================================
// FIELD RULES
// =============================================================================

func TestFileHeaderFieldRules(t *testing.T) {
	// Corrupt priority code, creation date, and blocking factor.
	h := fileHeader()
	h = "1" + "99" + h[3:23] + "2501AB" + h[29:37] + "20" + h[39:]
	text := join(
		h,
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	requireContains(t, diags, "Priority Code must be '01'")
	requireContains(t, diags, "File Creation Date must be six digits")
	requireContains(t, diags, "Blocking Factor must be '10'")
}

func TestMalformedCreationTimeIsWarning(t *testing.T) {
	h := fileHeader()
	h = h[:29] + "9X30" + h[33:]
	lines := records.SplitLines(goodFile())
	lines[0] = h
	diags := Validate(strings.Join(lines, "\n"))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	d := requireContains(t, diags, "File Creation Time")
	if d.Severity != types.SeverityWarning {
		t.Errorf("creation time severity = %v, want warning", d.Severity)
	}
}

func TestBlankCreationTimeTolerated(t *testing.T) {
	h := fileHeader()
	h = h[:29] + "    " + h[33:]
	lines := records.SplitLines(goodFile())
	lines[0] = h
	if diags := Validate(strings.Join(lines, "\n")); len(diags) != 0 {
		t.Fatalf("blank creation time should be tolerated, got %v", diags)
	}
}

func TestInvalidServiceClass(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("999", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("999", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "Service Class Code must be one of 200, 220, 225, 280")
}

func TestInvalidCheckDigit(t *testing.T) {
	entry := entryDetail("22", "06100010", 12345, "0")
	entry = entry[:11] + "9" + entry[12:] // correct digit is 4
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entry,
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	d := requireContains(t, diags, "Invalid Check Digit")
	if d.StartCol != 11 || d.EndCol != 12 {
		t.Errorf("check digit diagnostic at cols %d-%d, want 11-12", d.StartCol, d.EndCol)
	}
}

func TestNonNumericRoutingPrefix(t *testing.T) {
	entry := entryDetail("22", "06100010", 12345, "0")
	entry = entry[:3] + "06X00010" + entry[11:]
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entry,
		// The invalid prefix contributes nothing to the hash.
		batchControl("200", 1, 0, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 0, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "Receiving DFI Identification must be eight numeric digits")
}

func TestNonNumericAmountContributesNothing(t *testing.T) {
	entry := entryDetail("22", "06100010", 0, "0")
	entry = entry[:29] + "00000XY123" + entry[39:]
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entry,
		// Sums stay zero because the malformed amount is dropped.
		batchControl("200", 1, 6100010, 0, 0, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 0),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "Amount must be ten numeric digits")
}

func TestDebitRouting(t *testing.T) {
	// Transaction code 27: checking debit.
	text := join(
		fileHeader(),
		batchHeader("225", "PPD", "1234567890", "07640125", 1),
		entryDetail("27", "06100010", 9900, "0"),
		batchControl("225", 1, 6100010, 9900, 0, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 9900, 0),
	)
	if diags := Validate(text); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestInvalidAddendaIndicator(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "7"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "Addenda Record Indicator must be '0' or '1'")
}

// =============================================================================
// RECONCILIATION RULES
// =============================================================================

func TestBatchControlHeaderMismatch(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("220", 1, 6100010, 0, 12345, "9999999999", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	d := requireContains(t, diags, "Service Class Code mismatch")
	if !strings.Contains(d.Message, "expected '200'") {
		t.Errorf("mismatch message should name the expected value: %q", d.Message)
	}
	requireContains(t, diags, "Company Identification mismatch")
}

func TestTotalMismatchCitesBothValues(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 99, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	d := requireContains(t, diags, "Total Credit Entry Dollar Amount mismatch")
	if !strings.Contains(d.Message, "$0.99") || !strings.Contains(d.Message, "$123.45") {
		t.Errorf("amount mismatch should cite both dollar values: %q", d.Message)
	}
}

func TestEntryAddendaCountIncludesAddenda(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "1"),
		addenda("05"),
		batchControl("200", 2, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 2, 6100010, 0, 12345),
	)
	if diags := Validate(text); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestBlockCountMismatchIsWarning(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 99, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	d := requireContains(t, diags, "Block Count mismatch: declared 99, computed 1")
	if d.Severity != types.SeverityWarning {
		t.Errorf("block count severity = %v, want warning", d.Severity)
	}
}

func TestEntryHashUsesLowOrderTenDigits(t *testing.T) {
	// 101 entries of routing prefix 99999998 sum to 10,099,999,798, which
	// exceeds ten digits; the declared hash carries only the low-order ten.
	const routing = "99999998"
	const entries = 101

	lines := []string{
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
	}
	var hash uint64
	for i := 0; i < entries; i++ {
		lines = append(lines, entryDetail("22", routing, 0, "0"))
		hash += 99999998
	}
	if hash < 10_000_000_000 {
		t.Fatal("fixture does not exercise hash wraparound")
	}
	recordCount := int64(entries + 4)
	blocks := (recordCount + 9) / 10
	lines = append(lines,
		batchControl("200", entries, hash, 0, 0, "1234567890", "07640125", 1),
		fileControl(1, blocks, entries, hash, 0, 0),
	)

	if diags := Validate(join(lines...)); len(diags) != 0 {
		t.Fatalf("expected no diagnostics with wrapped hash, got %v", diags)
	}
}

func TestEntryHashMismatch(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 123, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 12345),
	)
	diags := Validate(text)
	d := requireContains(t, diags, "Entry Hash mismatch")
	if !strings.Contains(d.Message, "0006100010") {
		t.Errorf("hash mismatch should cite the zero-padded computed value: %q", d.Message)
	}
}

// =============================================================================
// IAT RULES
// =============================================================================

// iatFile builds an IAT batch whose single entry declares the given addenda
// count and is followed by that many addenda records (capped at the seven
// mandatory types).
func iatFile(declaredAddenda int64, actualAddenda int) string {
	lines := []string{
		fileHeader(),
		iatBatchHeader("220", "IAT", "1234567890", "07640125", 1),
		iatEntryDetail("22", "06100010", declaredAddenda, 50000, "1"),
	}
	codes := []string{"10", "11", "12", "13", "14", "15", "16"}
	for i := 0; i < actualAddenda; i++ {
		lines = append(lines, addenda(codes[i%len(codes)]))
	}
	count := int64(1 + actualAddenda)
	recordCount := int64(len(lines)) + 2
	blocks := (recordCount + 9) / 10
	lines = append(lines,
		batchControl("220", count, 6100010, 0, 50000, "1234567890", "07640125", 1),
		fileControl(1, blocks, count, 6100010, 0, 50000),
	)
	return join(lines...)
}

func TestIATFileWellFormed(t *testing.T) {
	if diags := Validate(iatFile(7, 7)); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestIATAddendaCountGate(t *testing.T) {
	diags := Validate(iatFile(4, 4))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "at least 7 addenda records")
}

func TestIATGateDoesNotApplyToDomesticBatches(t *testing.T) {
	// The same entry line inside a PPD batch: the addenda-count region is
	// ordinary account data there.
	entry := iatEntryDetail("22", "06100010", 4, 50000, "1")
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entry,
		batchControl("200", 1, 6100010, 0, 50000, "1234567890", "07640125", 1),
		fileControl(1, 1, 1, 6100010, 0, 50000),
	)
	diags := Validate(text)
	requireNotContains(t, diags, "addenda records")
}

func TestIATAddendaIndicatorMustBeSet(t *testing.T) {
	lines := records.SplitLines(iatFile(7, 7))
	lines[2] = lines[2][:78] + "0" + lines[2][79:]
	diags := Validate(strings.Join(lines, "\n"))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	requireContains(t, diags, "Addenda Record Indicator must be '1' for IAT entries")
}

func TestIATIndicatorAndServiceClass(t *testing.T) {
	lines := records.SplitLines(iatFile(7, 7))
	header := iatBatchHeader("280", "", "1234567890", "07640125", 1)
	lines[1] = header
	diags := Validate(strings.Join(lines, "\n"))
	requireContains(t, diags, "Service Class Code must be 200, 220, or 225 for IAT batches")
	requireContains(t, diags, "IAT Indicator must read 'IAT'")
	// The SEC context still applies to the batch control comparison.
	requireContains(t, diags, "Service Class Code mismatch")
}

// =============================================================================
// RESULT AGGREGATION
// =============================================================================

func TestCheckAggregatesCounts(t *testing.T) {
	text := join(
		fileHeader(),
		batchHeader("200", "PPD", "1234567890", "07640125", 1),
		entryDetail("22", "06100010", 12345, "0"),
		batchControl("200", 1, 6100010, 0, 12345, "1234567890", "07640125", 1),
		fileControl(1, 99, 1, 6100010, 0, 12345),
	)
	res := NewValidator(DefaultOptions()).Check(text)
	if !res.Valid {
		t.Error("a warnings-only file should be valid")
	}
	if res.ErrorCount != 0 || res.WarningCount != 1 {
		t.Errorf("counts = %d errors, %d warnings; want 0, 1", res.ErrorCount, res.WarningCount)
	}

	res = NewValidator(DefaultOptions()).Check("2" + strings.Repeat("X", 93))
	if res.Valid || res.ErrorCount != 3 {
		t.Errorf("expected invalid result with 3 errors, got %+v", res)
	}
}
