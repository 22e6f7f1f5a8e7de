// =============================================================================
// NACHA Validator - Summary Projector
// =============================================================================
//
// A lightweight, independent pass over the file text producing aggregate
// counts and sums for quick display. It deliberately shares no state with
// the validation engine so callers can request a summary without paying for
// full diagnostics; both passes stay pure functions.
//
// =============================================================================

package summary

import (
	"strconv"

	"github.com/rvrn22/nacha-validate/internal/records"
	"github.com/rvrn22/nacha-validate/internal/types"
)

// Summarize computes the aggregate view of the file: batch and entry counts
// plus debit/credit totals in dollars. Amounts are routed by the transaction
// code's second digit exactly as the validation engine routes them (0-4
// credit, 5-9 debit); zero or unparseable amounts are ignored.
func Summarize(text string) types.Summary {
	var batches, entries int
	var debitCents, creditCents int64

	for _, line := range records.SplitLines(text) {
		if records.IsBlank(line) || records.IsPadding(line) {
			continue
		}

		switch records.Classify(line) {
		case records.KindBatchHeader:
			batches++
		case records.KindEntryDetail:
			entries++
			if len(line) < 39 {
				continue
			}
			amount, err := strconv.ParseInt(line[29:39], 10, 64)
			if err != nil || amount <= 0 {
				continue
			}
			switch d := line[2]; {
			case d >= '0' && d <= '4':
				creditCents += amount
			case d >= '5' && d <= '9':
				debitCents += amount
			}
		}
	}

	return types.Summary{
		Batches:     batches,
		Entries:     entries,
		TotalDebit:  float64(debitCents) / 100,
		TotalCredit: float64(creditCents) / 100,
		NetAmount:   float64(creditCents-debitCents) / 100,
	}
}
