// =============================================================================
// NACHA Validator - Field Schema Registry
// =============================================================================
//
// This module is the schema provider for NACHA records. It maps a record kind
// (and, where relevant, the batch's Standard Entry Class code and an addenda
// type code read from the line itself) to an ordered list of fixed-position
// field descriptors.
//
// The layouts are fixed by the NACHA standard, so unlike a template-driven
// schema they are compiled in as static tables. Each table covers the full
// [0,94) record width with disjoint half-open ranges; gaps the standard
// leaves unused are represented by explicit Reserved descriptors so that
// FieldAt never falls off the end of a well-formed record.
//
// SELECTION RULES (priority order):
//   1. SEC code "IAT" with a Batch Header or Entry Detail record selects the
//      IAT variant layout (foreign-exchange and ISO currency/country fields
//      replace parts of the domestic layout).
//   2. SEC code "IAT" with an Addenda record selects the layout for the
//      two-digit addenda type code at columns [1,3) when it is one of the
//      seven mandatory IAT addenda (10-16); otherwise the generic addenda
//      layout applies.
//   3. Everything else uses the domestic layout for the record kind.
//
// =============================================================================

package schema

import "github.com/rvrn22/nacha-validate/internal/records"

// SECCodeIAT is the Standard Entry Class code selecting the International ACH
// Transaction layouts.
const SECCodeIAT = "IAT"

// =============================================================================
// FIELD DESCRIPTOR
// =============================================================================

// FieldDescriptor describes one fixed-position field of a record: a half-open
// byte range [Start,End) within the 94-character line, plus display metadata.
// Descriptors are immutable schema data, never instance-specific.
type FieldDescriptor struct {
	// Start is the 0-based column where the field begins.
	Start int

	// End is the column just past the end of the field.
	End int

	// Name is the short field name from the NACHA specification.
	Name string

	// Description explains the field's content and constraints.
	Description string
}

// Contains reports whether the column falls inside the field's range.
func (d FieldDescriptor) Contains(column int) bool {
	return column >= d.Start && column < d.End
}

// Width returns the fixed width of the field in characters.
func (d FieldDescriptor) Width() int {
	return d.End - d.Start
}

// =============================================================================
// LOOKUP FUNCTIONS
// =============================================================================

// FieldsFor returns the ordered field layout for a record kind. The line text
// is consulted only for IAT addenda records (to read the addenda type code),
// and secCode is the SEC code of the enclosing batch ("" when unknown).
// The returned slice is shared schema data and must not be modified.
func FieldsFor(kind records.Kind, line string, secCode string) []FieldDescriptor {
	if secCode == SECCodeIAT {
		switch kind {
		case records.KindBatchHeader:
			return iatBatchHeaderFields
		case records.KindEntryDetail:
			return iatEntryDetailFields
		case records.KindAddenda:
			if len(line) >= 3 {
				if fields, ok := iatAddendaFields[line[1:3]]; ok {
					return fields
				}
			}
			return addendaFields
		}
	}

	switch kind {
	case records.KindFileHeader:
		return fileHeaderFields
	case records.KindBatchHeader:
		return batchHeaderFields
	case records.KindEntryDetail:
		return entryDetailFields
	case records.KindAddenda:
		return addendaFields
	case records.KindBatchControl:
		return batchControlFields
	case records.KindFileControl:
		return fileControlFields
	default:
		return nil
	}
}

// FieldAt returns the descriptor covering the given column in the layout
// selected for the record kind, or false when no field covers the position.
// In well-formed layouts every column in [0,94) is covered, so a miss only
// happens for out-of-range columns or unknown record kinds.
func FieldAt(kind records.Kind, column int, line string, secCode string) (FieldDescriptor, bool) {
	for _, d := range FieldsFor(kind, line, secCode) {
		if d.Contains(column) {
			return d, true
		}
	}
	return FieldDescriptor{}, false
}
