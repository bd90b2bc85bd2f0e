package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kanadrill/config"
	"kanadrill/importer"
	"kanadrill/reading"
	"kanadrill/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Import vocabulary workbooks and write word practice sheets.",
	Long: `Read a vocabulary list from the first worksheet of an .xlsx or .xls workbook.

The first row is treated as a header when its labels name the columns, e.g.
日语 | 中文 | 发音 | 例句. Without a header the columns are read as
term, translation, pronunciation, example. Pronunciation and example are optional.

Header labels can be extended in the config under import.headers.`,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

// loadVocabulary parses path and fills missing readings when requested.
// Warnings go to errOut; the core packages never print.
func loadVocabulary(path string, cfg config.Config, fillReadings bool, errOut io.Writer) (*importer.Result, error) {
	result, err := importer.Parse(path, importer.OptionsFromConfig(cfg))
	if err != nil {
		return nil, err
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(errOut, "Warning: %s\n", warning)
	}

	if fillReadings {
		annotator, err := reading.NewAnnotator()
		if err != nil {
			return nil, fmt.Errorf("load reading dictionary: %w", err)
		}
		var filled int
		result.Entries, filled = reading.Fill(result.Entries, annotator)
		if filled > 0 {
			fmt.Fprintf(errOut, "Filled %d missing reading(s) from the dictionary\n", filled)
		}
	}

	return result, nil
}

func formatEntry(entry vocab.Entry) string {
	line := fmt.Sprintf("%3d. %s → %s", entry.ID, entry.SourceTerm, entry.TargetTerm)
	if entry.HasPronunciation() {
		line += fmt.Sprintf(" (%s)", vocab.Text(entry.Pronunciation))
	}
	if entry.HasExample() {
		line += fmt.Sprintf("  例句: %s", vocab.Text(entry.Example))
	}
	return line
}

func fillReadingsEnabled(cmd *cobra.Command, flagValue, configured bool) bool {
	if cmd.Flags().Changed("fill-readings") {
		return flagValue
	}
	return configured
}
