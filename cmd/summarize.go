// =============================================================================
// NACHA Validator - Summarize Command
// =============================================================================
//
// This file defines the 'summarize' command: the cheap aggregate view of an
// ACH file (batch/entry counts, debit/credit totals, net amount) without the
// cost of full validation.
//
// COMMAND USAGE:
//   nacha-validate summarize [file...] [flags]
//
// =============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvrn22/nacha-validate/internal/report"
	"github.com/rvrn22/nacha-validate/internal/summary"
	"github.com/rvrn22/nacha-validate/internal/types"
	"github.com/rvrn22/nacha-validate/pkg/utils"
)

// summarizeJSON emits machine-readable output.
var summarizeJSON bool

// summarizeCmd represents the 'summarize' command.
var summarizeCmd = &cobra.Command{
	Use:   "summarize [file...]",
	Short: "Print aggregate totals for ACH files",
	Long: `The summarize command runs the lightweight aggregate pass over the given ACH
files (or the configured input directory when no arguments are given) and
prints batch/entry counts and debit/credit totals. It shares no state with
full validation and does not report defects.`,

	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummarize(args)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false,
		"Emit machine-readable JSON output")
}

// runSummarize prints the summary of each input file.
func runSummarize(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		fm := utils.NewFileManager(cfg.InputDir, cfg.ArchiveDir, cfg.InputExtensions)
		files, err = fm.DiscoverInputFiles()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Printf("No ACH files found in %s\n", cfg.InputDir)
			return nil
		}
	}

	summaries := make(map[string]types.Summary, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		summaries[file] = summary.Summarize(string(data))
	}

	if summarizeJSON {
		out, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summaries: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, file := range files {
		fmt.Print(report.RenderSummary(file, summaries[file]))
	}
	return nil
}
