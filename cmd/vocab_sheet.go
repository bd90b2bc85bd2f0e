package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kanadrill/config"
	"kanadrill/drill"
	"kanadrill/output"
)

var (
	vocabSheetInput        string
	vocabSheetFillReadings bool
	vocabSheet             sheetFlags
)

var vocabSheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Write a vocabulary practice sheet from a workbook.",
	Long: `Parse a vocabulary workbook and write a practice sheet.

By default drill.count words (10) are drawn at random. Use --count 0 for all
words and --ordered to keep the workbook order.

Directions:
- jp-to-cn (default): Japanese term asked, translation answered
- cn-to-jp: translation asked, Japanese term answered`,
	Example: `
  # Ten random words
  kanadrill vocab sheet -i words.xlsx -o words.html

  # All words, translation to Japanese, on A4
  kanadrill vocab sheet -i words.xlsx --count 0 --direction cn-to-jp --page-width a4 -o words.html

  # Reproducible CSV sheet
  kanadrill vocab sheet -i words.xls --seed 42 -o words.csv
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts, err := vocabSheet.drillOptions(cmd, cfg, false)
		if err != nil {
			return err
		}
		writer, err := vocabSheet.writer(cmd, cfg)
		if err != nil {
			return err
		}

		session := drill.NewSession(opts.Rand)
		fill := fillReadingsEnabled(cmd, vocabSheetFillReadings, cfg.Vocab.FillReadings)
		sheet, words, err := buildVocabSheet(session, vocabSheetInput, vocabSheet.output, cfg, fill, opts, writer, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Vocabulary sheet written: %s (%d of %d words, %s)\n",
			vocabSheet.output,
			sheet.Len(),
			words,
			sheet.Direction.Caption(),
		)
		return nil
	},
}

// buildVocabSheet parses input, draws a sheet and writes it. The session's
// word list and sheet are replaced only once the sheet has been written.
func buildVocabSheet(
	session *drill.Session,
	input, outputPath string,
	cfg config.Config,
	fillReadings bool,
	opts drill.Options,
	writer output.Writer,
	errOut io.Writer,
) (drill.Sheet, int, error) {
	result, err := loadVocabulary(input, cfg, fillReadings, errOut)
	if err != nil {
		return drill.Sheet{}, 0, err
	}

	sheet, err := session.Reload(result.Entries, opts, func(sheet drill.Sheet) error {
		return writer.Write(outputPath, sheet)
	})
	if err != nil {
		return drill.Sheet{}, 0, err
	}
	return sheet, len(result.Entries), nil
}

func init() {
	vocabCmd.AddCommand(vocabSheetCmd)

	vocabSheetCmd.Flags().StringVarP(&vocabSheetInput, "input", "i", "", "Vocabulary workbook (.xlsx or .xls)")
	vocabSheetCmd.Flags().BoolVar(&vocabSheetFillReadings, "fill-readings", false, "Fill missing pronunciations from the built-in dictionary")
	vocabSheet.register(vocabSheetCmd, "Practice direction: jp-to-cn|cn-to-jp")

	_ = vocabSheetCmd.MarkFlagRequired("input")
}
