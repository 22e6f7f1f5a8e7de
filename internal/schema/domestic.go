// =============================================================================
// NACHA Validator - Domestic Record Layouts
// =============================================================================
//
// Fixed-position field tables for the six domestic record types. Offsets are
// 0-based half-open ranges into the 94-character record. Every table covers
// [0,94) with disjoint ranges; unused positions carry explicit Reserved
// descriptors.
//
// =============================================================================

package schema

// fileHeaderFields is the layout of the File Header ('1') record.
var fileHeaderFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as a File Header; always '1'."},
	{1, 3, "Priority Code", "Always '01'."},
	{3, 13, "Immediate Destination", "Routing number of the receiving point, preceded by a blank."},
	{13, 23, "Immediate Origin", "Routing number or company identification of the sending point."},
	{23, 29, "File Creation Date", "Date the file was created, YYMMDD."},
	{29, 33, "File Creation Time", "Time the file was created, HHMM (optional)."},
	{33, 34, "File ID Modifier", "Distinguishes multiple files created on the same day; A-Z or 0-9."},
	{34, 37, "Record Size", "Number of characters per record; always '094'."},
	{37, 39, "Blocking Factor", "Records per physical block; always '10'."},
	{39, 40, "Format Code", "Always '1'."},
	{40, 63, "Immediate Destination Name", "Name of the receiving point."},
	{63, 86, "Immediate Origin Name", "Name of the sending point."},
	{86, 94, "Reference Code", "Optional originator-defined reference."},
}

// batchHeaderFields is the layout of the domestic Batch Header ('5') record.
var batchHeaderFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as a Batch Header; always '5'."},
	{1, 4, "Service Class Code", "200 mixed, 220 credits only, 225 debits only, 280 ADV."},
	{4, 20, "Company Name", "Name of the originating company."},
	{20, 40, "Company Discretionary Data", "Originator-defined data; not forwarded."},
	{40, 50, "Company Identification", "Identifier assigned to the originating company."},
	{50, 53, "Standard Entry Class Code", "Three-character SEC code, e.g. PPD, CCD, IAT."},
	{53, 63, "Company Entry Description", "Describes the purpose of the entries, e.g. PAYROLL."},
	{63, 69, "Company Descriptive Date", "Originator-defined descriptive date."},
	{69, 75, "Effective Entry Date", "Requested settlement date, YYMMDD."},
	{75, 78, "Settlement Date", "Julian settlement date; inserted by the operator."},
	{78, 79, "Originator Status Code", "Always '1' for non-Federal-Government originators."},
	{79, 87, "Originating DFI Identification", "First eight digits of the ODFI routing number."},
	{87, 94, "Batch Number", "Sequential batch number assigned by the originator."},
}

// entryDetailFields is the layout of the domestic Entry Detail ('6') record.
var entryDetailFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as an Entry Detail; always '6'."},
	{1, 3, "Transaction Code", "Account type and direction; second digit 0-4 credit, 5-9 debit."},
	{3, 11, "Receiving DFI Identification", "First eight digits of the RDFI routing number."},
	{11, 12, "Check Digit", "ABA check digit of the Receiving DFI Identification."},
	{12, 29, "DFI Account Number", "Receiver's account number at the RDFI."},
	{29, 39, "Amount", "Entry amount in cents, right-justified and zero-filled."},
	{39, 54, "Individual Identification Number", "Originator-assigned identifier for the receiver."},
	{54, 76, "Individual Name", "Name of the receiver."},
	{76, 78, "Discretionary Data", "Originator-defined data."},
	{78, 79, "Addenda Record Indicator", "'1' when an addenda record follows, otherwise '0'."},
	{79, 94, "Trace Number", "ODFI routing prefix plus entry sequence number."},
}

// addendaFields is the generic layout of the Addenda ('7') record, used for
// all domestic addenda and for IAT addenda with an unrecognized type code.
var addendaFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as an Addenda; always '7'."},
	{1, 3, "Addenda Type Code", "Identifies the addenda variant, e.g. 05 for PPD/CCD."},
	{3, 83, "Payment Related Information", "Free-form supplementary payment data."},
	{83, 87, "Addenda Sequence Number", "Sequence of this addenda within its entry."},
	{87, 94, "Entry Detail Sequence Number", "Last seven digits of the entry's trace number."},
}

// batchControlFields is the layout of the Batch Control ('8') record.
var batchControlFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as a Batch Control; always '8'."},
	{1, 4, "Service Class Code", "Must match the Service Class Code of the Batch Header."},
	{4, 10, "Entry/Addenda Count", "Count of Entry Detail and Addenda records in the batch."},
	{10, 20, "Entry Hash", "Low-order ten digits of the sum of RDFI routing prefixes."},
	{20, 32, "Total Debit Entry Dollar Amount", "Sum of debit entry amounts in cents."},
	{32, 44, "Total Credit Entry Dollar Amount", "Sum of credit entry amounts in cents."},
	{44, 54, "Company Identification", "Must match the Company Identification of the Batch Header."},
	{54, 73, "Message Authentication Code", "Optional MAC; usually blank."},
	{73, 79, "Reserved", "Unused; blank."},
	{79, 87, "Originating DFI Identification", "Must match the ODFI Identification of the Batch Header."},
	{87, 94, "Batch Number", "Must match the Batch Number of the Batch Header."},
}

// fileControlFields is the layout of the File Control ('9') record.
var fileControlFields = []FieldDescriptor{
	{0, 1, "Record Type Code", "Identifies the record as a File Control; always '9'."},
	{1, 7, "Batch Count", "Number of Batch Header records in the file."},
	{7, 13, "Block Count", "Number of 10-record physical blocks in the file."},
	{13, 21, "Entry/Addenda Count", "Count of Entry Detail and Addenda records in the file."},
	{21, 31, "Entry Hash", "Low-order ten digits of the sum of all RDFI routing prefixes."},
	{31, 43, "Total Debit Entry Dollar Amount", "Sum of all debit entry amounts in cents."},
	{43, 55, "Total Credit Entry Dollar Amount", "Sum of all credit entry amounts in cents."},
	{55, 94, "Reserved", "Unused; blank."},
}
