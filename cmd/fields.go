// =============================================================================
// NACHA Validator - Fields Command
// =============================================================================
//
// This file defines the 'fields' command, which exposes the field schema
// registry: the fixed-position field layout of each record type, including
// the IAT variants. This is the same lookup an editor hover consumer keys on
// cursor position.
//
// COMMAND USAGE:
//   nacha-validate fields <record-type> [flags]
//
// FLAGS:
//   --sec    : SEC code context (e.g. IAT) selecting variant layouts
//   --line   : Record line text, used to resolve IAT addenda sub-types
//   --column : Print only the field covering this 0-based column
//
// EXAMPLES:
//   nacha-validate fields 6                  # Domestic Entry Detail layout
//   nacha-validate fields 6 --sec IAT        # IAT Entry Detail layout
//   nacha-validate fields 6 --column 30      # Field covering column 30
//   nacha-validate fields 7 --sec IAT --line "710..."   # IAT addenda type 10
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rvrn22/nacha-validate/internal/records"
	"github.com/rvrn22/nacha-validate/internal/schema"
)

// fieldsSEC is the SEC code context for variant layout selection.
var fieldsSEC string

// fieldsLine is the record line text for addenda sub-type resolution.
var fieldsLine string

// fieldsColumn restricts output to the field covering one column.
var fieldsColumn int

// fieldsCmd represents the 'fields' command.
var fieldsCmd = &cobra.Command{
	Use:   "fields <record-type>",
	Short: "Inspect fixed-width field layouts",
	Long: `The fields command prints the ordered fixed-position field layout for a
record type (1, 5, 6, 7, 8, or 9). The --sec flag selects variant layouts:
with --sec IAT, Batch Header and Entry Detail use the international layouts,
and Addenda layouts are resolved from the type code in the --line text.`,

	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFields(args[0])
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)

	fieldsCmd.Flags().StringVar(&fieldsSEC, "sec", "",
		"SEC code context (e.g. IAT)")
	fieldsCmd.Flags().StringVar(&fieldsLine, "line", "",
		"Record line text, used to resolve IAT addenda sub-types")
	fieldsCmd.Flags().IntVar(&fieldsColumn, "column", -1,
		"Print only the field covering this 0-based column")
}

// runFields prints the selected layout, or the single field covering the
// requested column.
func runFields(recordType string) error {
	if len(recordType) != 1 {
		return fmt.Errorf("record type must be a single character, one of 1, 5, 6, 7, 8, 9")
	}

	kind := records.KindForType(recordType[0])
	if kind == records.KindUnknown {
		return fmt.Errorf("unknown record type '%s'; expected one of 1, 5, 6, 7, 8, 9", recordType)
	}

	if fieldsColumn >= 0 {
		d, ok := schema.FieldAt(kind, fieldsColumn, fieldsLine, fieldsSEC)
		if !ok {
			return fmt.Errorf("no field covers column %d of a %s record", fieldsColumn, kind)
		}
		fmt.Printf("%s [%d,%d): %s\n", d.Name, d.Start, d.End, d.Description)
		return nil
	}

	fields := schema.FieldsFor(kind, fieldsLine, fieldsSEC)
	if fields == nil {
		return fmt.Errorf("no layout registered for %s records", kind)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "START\tEND\tWIDTH\tNAME\tDESCRIPTION\n")
	for _, d := range fields {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n", d.Start, d.End, d.Width(), d.Name, d.Description)
	}
	return w.Flush()
}
