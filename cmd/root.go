// =============================================================================
// NACHA Validator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (validate, summarize, fields,
// version) are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (nacha-validate)
//   ├── validateCmd  (nacha-validate validate)
//   ├── summarizeCmd (nacha-validate summarize)
//   ├── fieldsCmd    (nacha-validate fields)
//   └── versionCmd   (nacha-validate version)
//
// The root command owns the global flags (--config, --verbose) and the
// shared configuration/logging initialization used by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvrn22/nacha-validate/internal/config"
	"github.com/rvrn22/nacha-validate/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nacha-validate",
	Short: "NACHA ACH file validator - structural and arithmetic validation of ACH payment files",
	Long: `nacha-validate checks NACHA ACH payment files for structural and arithmetic
self-consistency: record ordering, fixed-width field syntax, ABA routing
check digits, and the reconciliation totals carried in Batch Control and
File Control records (entry/addenda counts, debit/credit sums, entry hash,
block count).

Findings are reported as diagnostics with character-level locations and
severities; a file is never rejected outright, so a single malformed record
does not hide unrelated defects elsewhere.

Example Usage:
  nacha-validate validate payroll.ach          # Validate one file
  nacha-validate validate                      # Validate everything in the input directory
  nacha-validate validate --report payroll.ach # Also write an XLSX report
  nacha-validate summarize payroll.ach         # Quick totals without full validation
  nacha-validate fields 6 --column 30          # Which Entry Detail field covers column 30?`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose (debug) logging",
	)
}

// loadConfig loads the configuration and initializes logging for a command
// run. Shared by the subcommands.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logging.Init(cfg.LogLevel, verbose)
	return cfg, nil
}
