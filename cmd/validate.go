// =============================================================================
// NACHA Validator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, the main command of the CLI. It
// runs full structural and arithmetic validation over one or more ACH files
// and reports the resulting diagnostics.
//
// COMMAND USAGE:
//   nacha-validate validate [file...] [flags]
//
// FLAGS:
//   --report   : Write an XLSX diagnostics workbook per file
//   --archive  : Move cleanly validated files to the archive directory
//   --json     : Emit machine-readable JSON instead of styled output
//   --quiet    : Suppress per-diagnostic output, print verdicts only
//
// With no file arguments, the configured input directory is scanned for ACH
// files and each one is validated independently; a defect in one file never
// stops the others.
//
// =============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvrn22/nacha-validate/internal/logging"
	"github.com/rvrn22/nacha-validate/internal/report"
	"github.com/rvrn22/nacha-validate/internal/summary"
	"github.com/rvrn22/nacha-validate/internal/types"
	"github.com/rvrn22/nacha-validate/internal/validation"
	"github.com/rvrn22/nacha-validate/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// validateReport writes an XLSX diagnostics workbook per validated file.
var validateReport bool

// validateArchive moves cleanly validated files to the archive directory.
var validateArchive bool

// validateJSON emits machine-readable output.
var validateJSON bool

// validateQuiet suppresses per-diagnostic console output.
var validateQuiet bool

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// fileResult is the JSON shape of one validated file.
type fileResult struct {
	File        string             `json:"file"`
	Valid       bool               `json:"valid"`
	Diagnostics []types.Diagnostic `json:"diagnostics"`
	Summary     types.Summary      `json:"summary"`
}

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate ACH files and report diagnostics",
	Long: `The validate command runs full structural and arithmetic validation over the
given ACH files, or over every ACH file in the configured input directory
when no arguments are given.

Every rule is evaluated independently: a malformed record yields diagnostics
but never aborts the scan, so one bad line cannot hide findings elsewhere in
the file. The command exits non-zero when any Error-severity diagnostic was
emitted.`,

	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateReport, "report", false,
		"Write an XLSX diagnostics workbook per file")
	validateCmd.Flags().BoolVar(&validateArchive, "archive", false,
		"Move cleanly validated files to the archive directory")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"Emit machine-readable JSON output")
	validateCmd.Flags().BoolVar(&validateQuiet, "quiet", false,
		"Suppress per-diagnostic output, print verdicts only")
}

// =============================================================================
// MAIN VALIDATION FLOW
// =============================================================================

// runValidate validates each input file and renders the results.
func runValidate(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.ArchiveDir, cfg.InputExtensions)

	files := args
	if len(files) == 0 {
		files, err = fm.DiscoverInputFiles()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Printf("No ACH files found in %s\n", cfg.InputDir)
			return nil
		}
	}

	validator := validation.NewValidator(cfg.ValidationOptions())

	var results []fileResult
	totalErrors := 0

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		text := string(data)

		res := validator.Check(text)
		sum := summary.Summarize(text)
		totalErrors += res.ErrorCount

		logging.L.Debug("validated file",
			"file", file,
			"diagnostics", len(res.Diagnostics),
			"errors", res.ErrorCount,
		)

		if validateJSON {
			results = append(results, fileResult{
				File:        file,
				Valid:       res.Valid,
				Diagnostics: res.Diagnostics,
				Summary:     sum,
			})
		} else {
			fmt.Println(report.RenderVerdict(file, res.ErrorCount, res.WarningCount))
			if !validateQuiet && len(res.Diagnostics) > 0 {
				fmt.Print(report.RenderDiagnostics(res.Diagnostics))
			}
		}

		if validateReport {
			path, err := report.WriteWorkbook(cfg.ReportDir, file, res.Diagnostics, sum)
			if err != nil {
				return err
			}
			logging.L.Info("wrote report", "file", file, "report", path)
			if !validateJSON {
				fmt.Printf("  report: %s\n", path)
			}
		}

		if validateArchive && res.Valid {
			dest, err := fm.ArchiveFile(file)
			if err != nil {
				return err
			}
			logging.L.Info("archived file", "file", file, "dest", dest)
		}
	}

	if validateJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(out))
	}

	if totalErrors > 0 {
		return fmt.Errorf("validation found %d error(s) across %d file(s)", totalErrors, len(files))
	}
	return nil
}
