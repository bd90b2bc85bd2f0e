package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kanadrill/importer"
)

var (
	vocabImportInput        string
	vocabImportFillReadings bool
	vocabImportQuiet        bool
)

var vocabImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse a vocabulary workbook and print the words it contains.",
	Long: `Parse a vocabulary workbook and report what was read.

Rows with both a term and a translation become words. Blank rows are skipped
silently; rows with only one of the two are skipped and counted.`,
	Example: `
  # Show words and a summary
  kanadrill vocab import -i words.xlsx

  # Summary only, filling missing readings from the dictionary
  kanadrill vocab import -i words.xls --fill-readings --quiet
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fill := fillReadingsEnabled(cmd, vocabImportFillReadings, cfg.Vocab.FillReadings)
		result, err := loadVocabulary(vocabImportInput, cfg, fill, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !vocabImportQuiet {
			for _, entry := range result.Entries {
				fmt.Fprintln(out, formatEntry(entry))
			}
		}
		fmt.Fprintf(out, "Import completed. Header: %s, Rows scanned: %d, Words: %d, Blank rows: %d, Incomplete rows: %d\n",
			describeHeader(result.Mapping),
			result.RowsScanned,
			result.RowsMapped,
			result.RowsBlank,
			result.RowsPartial,
		)
		return nil
	},
}

func describeHeader(mapping importer.ColumnMapping) string {
	if mapping.HasHeader {
		return "detected"
	}
	return "none (positional columns)"
}

func init() {
	vocabCmd.AddCommand(vocabImportCmd)

	vocabImportCmd.Flags().StringVarP(&vocabImportInput, "input", "i", "", "Vocabulary workbook (.xlsx or .xls)")
	vocabImportCmd.Flags().BoolVar(&vocabImportFillReadings, "fill-readings", false, "Fill missing pronunciations from the built-in dictionary")
	vocabImportCmd.Flags().BoolVarP(&vocabImportQuiet, "quiet", "q", false, "Print the summary only")

	_ = vocabImportCmd.MarkFlagRequired("input")
}
