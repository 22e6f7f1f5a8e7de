// =============================================================================
// NACHA Validator - XLSX Report Writer
// =============================================================================
//
// Writes a diagnostics workbook for a validated file: a Summary sheet with
// the aggregate counts and totals, and a Diagnostics sheet with one row per
// finding. Report files are named with a timestamp and a UUID so repeated
// runs never collide.
//
// =============================================================================

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/rvrn22/nacha-validate/internal/types"
)

const (
	summarySheet     = "Summary"
	diagnosticsSheet = "Diagnostics"
)

// WriteWorkbook writes an XLSX report for one validated file into dir and
// returns the path of the written workbook.
func WriteWorkbook(dir, sourceName string, diags []types.Diagnostic, sum types.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("failed to prepare summary sheet: %w", err)
	}

	summaryRows := [][]any{
		{"Source File", sourceName},
		{"Generated", time.Now().Format(time.RFC3339)},
		{"Batches", sum.Batches},
		{"Entries", sum.Entries},
		{"Total Debit", sum.TotalDebit},
		{"Total Credit", sum.TotalCredit},
		{"Net Amount", sum.NetAmount},
		{"Diagnostics", len(diags)},
		{"Errors", types.CountErrors(diags)},
	}
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if _, err := f.NewSheet(diagnosticsSheet); err != nil {
		return "", fmt.Errorf("failed to create diagnostics sheet: %w", err)
	}

	header := []any{"Line", "Start Col", "End Col", "Severity", "Message"}
	if err := f.SetSheetRow(diagnosticsSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write diagnostics header: %w", err)
	}
	for i, d := range diags {
		row := []any{d.Line + 1, d.StartCol, d.EndCol, d.Severity.String(), d.Message}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(diagnosticsSheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write diagnostics row: %w", err)
		}
	}

	path := filepath.Join(dir, reportFileName(sourceName))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}

// reportFileName builds a collision-free report name:
// {source}_{timestamp}_{uuid}.xlsx
func reportFileName(sourceName string) string {
	base := strings.TrimSuffix(filepath.Base(sourceName), filepath.Ext(sourceName))
	if base == "" {
		base = "report"
	}
	return fmt.Sprintf("%s_%s_%s.xlsx", base, time.Now().Format("20060102_150405"), uuid.New().String())
}
