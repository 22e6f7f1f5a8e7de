// =============================================================================
// NACHA Validator - Console Rendering
// =============================================================================
//
// Terminal rendering of diagnostics and summaries, styled by severity.
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvrn22/nacha-validate/internal/types"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")) // Blue

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	headingStyle = lipgloss.NewStyle().
			Bold(true)
)

// severityStyle returns the lipgloss style for a severity level.
func severityStyle(s types.Severity) lipgloss.Style {
	switch s {
	case types.SeverityError:
		return errorStyle
	case types.SeverityWarning:
		return warningStyle
	case types.SeverityInformation:
		return infoStyle
	default:
		return hintStyle
	}
}

// RenderDiagnostics formats a diagnostic list for terminal output, one
// finding per line.
func RenderDiagnostics(diags []types.Diagnostic) string {
	if len(diags) == 0 {
		return hintStyle.Render("no findings")
	}

	var b strings.Builder
	for _, d := range diags {
		loc := locationStyle.Render(fmt.Sprintf("%d:%d-%d", d.Line+1, d.StartCol, d.EndCol))
		sev := severityStyle(d.Severity).Render(d.Severity.String())
		fmt.Fprintf(&b, "  %s %s %s\n", loc, sev, d.Message)
	}
	return b.String()
}

// RenderSummary formats a file summary for terminal output.
func RenderSummary(name string, sum types.Summary) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Batches:      %d\n", sum.Batches)
	fmt.Fprintf(&b, "  Entries:      %d\n", sum.Entries)
	fmt.Fprintf(&b, "  Total Debit:  $%.2f\n", sum.TotalDebit)
	fmt.Fprintf(&b, "  Total Credit: $%.2f\n", sum.TotalCredit)
	fmt.Fprintf(&b, "  Net Amount:   $%.2f\n", sum.NetAmount)
	return b.String()
}

// RenderVerdict formats the per-file pass/fail line.
func RenderVerdict(name string, errorCount, warningCount int) string {
	if errorCount > 0 {
		return fmt.Sprintf("%s %s (%d error(s), %d warning(s))",
			errorStyle.Render("✗"), name, errorCount, warningCount)
	}
	if warningCount > 0 {
		return fmt.Sprintf("%s %s (%d warning(s))", warningStyle.Render("✓"), name, warningCount)
	}
	return fmt.Sprintf("%s %s", infoStyle.Render("✓"), name)
}
