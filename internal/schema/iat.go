// =============================================================================
// NACHA Validator - IAT Record Layouts
// =============================================================================
//
// International ACH Transaction (IAT) batches reuse the same record type
// digits as domestic batches but with different field layouts: the Batch
// Header carries foreign-exchange and ISO currency/country fields, the Entry
// Detail declares its addenda count inline, and every entry is followed by
// seven mandatory addenda records with type codes 10 through 16.
//
// These layouts serve field presentation (FieldsFor/FieldAt); the
// reconciliation pass treats IAT addenda like any other addenda record.
//
// =============================================================================

package schema

// iatBatchHeaderFields is the layout of the IAT Batch Header ('5') record.
var iatBatchHeaderFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as a Batch Header; always '5'."},
	{1, 4, "Service Class Code", "200 mixed, 220 credits only, 225 debits only."},
	{4, 20, "IAT Indicator", "Literally 'IAT', left-justified."},
	{20, 22, "Foreign Exchange Indicator", "FV fixed-to-variable, VF variable-to-fixed, FF fixed-to-fixed."},
	{22, 23, "Foreign Exchange Reference Indicator", "1 rate, 2 reference number, 3 space-filled."},
	{23, 38, "Foreign Exchange Reference", "Exchange rate or reference per the indicator."},
	{38, 40, "ISO Destination Country Code", "Two-character ISO country code of the receiver."},
	{40, 50, "Originator Identification", "Identifier assigned to the originating company."},
	{50, 53, "Standard Entry Class Code", "Always 'IAT'."},
	{53, 63, "Company Entry Description", "Describes the purpose of the entries."},
	{63, 66, "ISO Originating Currency Code", "Three-character ISO currency code of the origin."},
	{66, 69, "ISO Destination Currency Code", "Three-character ISO currency code of the destination."},
	{69, 75, "Effective Entry Date", "Requested settlement date, YYMMDD."},
	{75, 78, "Settlement Date", "Julian settlement date; inserted by the operator."},
	{78, 79, "Originator Status Code", "Always '1'."},
	{79, 87, "GO or Originating DFI Identification", "Gateway operator or ODFI routing prefix."},
	{87, 94, "Batch Number", "Sequential batch number assigned by the originator."},
}

// iatEntryDetailFields is the layout of the IAT Entry Detail ('6') record.
var iatEntryDetailFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as an Entry Detail; always '6'."},
	{1, 3, "Transaction Code", "Account type and direction; second digit 0-4 credit, 5-9 debit."},
	{3, 11, "GO or Receiving DFI Identification", "Gateway operator or RDFI routing prefix."},
	{11, 12, "Check Digit", "ABA check digit of the DFI Identification."},
	{12, 16, "Number of Addenda Records", "Count of addenda for this entry; at least 7."},
	{16, 29, "Reserved", "Unused; blank."},
	{29, 39, "Amount", "Entry amount in cents, right-justified and zero-filled."},
	{39, 74, "Foreign Receiver's Account Number", "Receiver's account number, left-justified."},
	{74, 76, "Reserved", "Unused; blank."},
	{76, 77, "Gateway Operator OFAC Screening Indicator", "Blank, '0', or '1'."},
	{77, 78, "Secondary OFAC Screening Indicator", "Blank, '0', or '1'."},
	{78, 79, "Addenda Record Indicator", "Always '1' for IAT entries."},
	{79, 94, "Trace Number", "ODFI routing prefix plus entry sequence number."},
}

// iatAddendaFields maps the two-digit addenda type code at columns [1,3) to
// the layout of the corresponding mandatory IAT addenda record.
var iatAddendaFields = map[string][]FieldDescriptor{
	// First IAT Addenda: transaction information.
	"10": {
		{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
		{1, 3, "Addenda Type Code", "Always '10'."},
		{3, 6, "Transaction Type Code", "Three-character payment type, e.g. WEB, BUS, MIS."},
		{6, 24, "Foreign Payment Amount", "Amount in the foreign currency, in its minor unit."},
		{24, 46, "Foreign Trace Number", "Trace number assigned by the foreign system."},
		{46, 81, "Receiving Company Name / Individual Name", "Name of the receiver."},
		{81, 87, "Reserved", "Unused; blank."},
		{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
	},
	// Second IAT Addenda: originator name and street address.
	"11": {
		{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
		{1, 3, "Addenda Type Code", "Always '11'."},
		{3, 38, "Originator Name", "Name of the originating party."},
		{38, 73, "Originator Street Address", "Physical street address of the originator."},
		{73, 87, "Reserved", "Unused; blank."},
		{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
	},
	// Third IAT Addenda: originator city, state, country, postal code.
	"12": {
		{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
		{1, 3, "Addenda Type Code", "Always '12'."},
		{3, 38, "Originator City and State/Province", "City and state or province, asterisk-delimited."},
		{38, 73, "Originator Country and Postal Code", "Country and postal code, asterisk-delimited."},
		{73, 87, "Reserved", "Unused; blank."},
		{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
	},
	// Fourth IAT Addenda: originating DFI.
	"13": {
		{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
		{1, 3, "Addenda Type Code", "Always '13'."},
		{3, 38, "Originating DFI Name", "Name of the originating financial institution."},
		{38, 40, "Originating DFI Identification Number Qualifier", "01 routing number, 02 BIC, 03 IBAN."},
		{40, 74, "Originating DFI Identification", "Identifier per the qualifier."},
		{74, 77, "Originating DFI Branch Country Code", "ISO country code of the branch."},
		{77, 87, "Reserved", "Unused; blank."},
		{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
	},
	// Fifth IAT Addenda: receiving DFI.
	"14": {
		{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
		{1, 3, "Addenda Type Code", "Always '14'."},
		{3, 38, "Receiving DFI Name", "Name of the receiving financial institution."},
		{38, 40, "Receiving DFI Identification Number Qualifier", "01 routing number, 02 BIC, 03 IBAN."},
		{40, 74, "Receiving DFI Identification", "Identifier per the qualifier."},
		{74, 77, "Receiving DFI Branch Country Code", "ISO country code of the branch."},
		{77, 87, "Reserved", "Unused; blank."},
		{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
	},
	// Sixth IAT Addenda: receiver identification and street address.
	"15": {
		{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
		{1, 3, "Addenda Type Code", "Always '15'."},
		{3, 18, "Receiver Identification Number", "Identifier of the receiving party."},
		{18, 53, "Receiver Street Address", "Physical street address of the receiver."},
		{53, 87, "Reserved", "Unused; blank."},
		{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
	},
	// Seventh IAT Addenda: receiver city, state, country, postal code.
	"16": {
		{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
		{1, 3, "Addenda Type Code", "Always '16'."},
		{3, 38, "Receiver City and State/Province", "City and state or province, asterisk-delimited."},
		{38, 73, "Receiver Country and Postal Code", "Country and postal code, asterisk-delimited."},
		{73, 87, "Reserved", "Unused; blank."},
		{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
	},
}
