// =============================================================================
// NACHA Validator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the nacha-validate CLI. It initializes
// the Cobra CLI framework and delegates command execution to the cmd
// package.
//
// USAGE:
//   nacha-validate validate   - Validate ACH files and report diagnostics
//   nacha-validate summarize  - Print aggregate totals for ACH files
//   nacha-validate fields     - Inspect fixed-width field layouts
//   nacha-validate version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core validation, schema, and reporting logic
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/rvrn22/nacha-validate/cmd"
)

func main() {
	cmd.Execute()
}
