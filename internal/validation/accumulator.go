// =============================================================================
// NACHA Validator - Running Totals
// =============================================================================
//
// Accumulators for the reconciliation cross-checks. A batchTotals is created
// when a Batch Header is accepted and consumed when the matching Batch
// Control closes the batch; fileTotals lives for the whole scan and is read
// at the File Control record. Both are owned exclusively by one validation
// call and never shared.
//
// =============================================================================

package validation

// entryHashModulus reduces the accumulated entry hash to the ten low-order
// decimal digits declared in control records.
const entryHashModulus = 10_000_000_000

// batchTotals carries the running totals of one open batch plus the Batch
// Header fields the Batch Control record must agree with.
type batchTotals struct {
	// entryAddendaCount counts Entry Detail and Addenda records alike, as
	// the control-record count fields are defined over both.
	entryAddendaCount int

	// debitCents and creditCents are the running amount sums in cents.
	debitCents  int64
	creditCents int64

	// entryHash is the wide sum of RDFI routing prefixes. Addends are at
	// most 99,999,999, so a uint64 cannot realistically overflow, but
	// addHash still guards the addition.
	entryHash uint64

	// Batch Header snapshot, trimmed, for the Batch Control cross-check.
	headerLine   int
	serviceClass string
	companyID    string
	odfiID       string
	batchNumber  string
	secCode      string
}

// fileTotals carries the running totals of the whole file, read when the
// File Control record is reconciled.
type fileTotals struct {
	batchCount        int
	entryAddendaCount int
	debitCents        int64
	creditCents       int64
	entryHash         uint64
}

// addHash accumulates a routing prefix into the hash, saturating instead of
// wrapping in the (unreachable in practice) overflow case so a truncated sum
// never masquerades as a valid one.
func addHash(hash uint64, routing uint64) uint64 {
	if hash > ^uint64(0)-routing {
		return ^uint64(0)
	}
	return hash + routing
}
