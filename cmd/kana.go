package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kanadrill/drill"
)

var (
	kanaRows  []string
	kanaSheet sheetFlags
)

var kanaCmd = &cobra.Command{
	Use:   "kana",
	Short: "Write a kana practice sheet.",
	Long: `Build a practice sheet from selected rows of the kana table.

Rows are named by their label (あ行, か行, ...) or romaji alias (a, ka, ...).
All rows are used when --rows is omitted.

Directions:
- romaji-to-hiragana (default)
- romaji-to-katakana
- hiragana-to-romaji
- katakana-to-romaji`,
	Example: `
  # All rows, romaji to hiragana, shuffled
  kanadrill kana -o kana.html

  # Two rows as katakana to romaji, in table order, A4 page
  kanadrill kana --rows ka,sa --direction katakana-to-romaji --ordered --page-width a4 -o kana.html

  # Question sheet only, as Excel
  kanadrill kana --no-answers -o kana.xlsx
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts, err := kanaSheet.drillOptions(cmd, cfg, true)
		if err != nil {
			return err
		}
		writer, err := kanaSheet.writer(cmd, cfg)
		if err != nil {
			return err
		}

		session := drill.NewSession(opts.Rand)
		if err := session.SelectKana(kanaRows); err != nil {
			return err
		}
		sheet, err := session.Regenerate(opts)
		if err != nil {
			return err
		}

		if err := writer.Write(kanaSheet.output, sheet); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Kana sheet written: %s (%d questions, %s)\n",
			kanaSheet.output,
			sheet.Len(),
			sheet.Direction.Caption(),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kanaCmd)

	kanaCmd.Flags().StringSliceVarP(&kanaRows, "rows", "r", nil, "Kana rows to practice, e.g. あ行,ka (default: all rows)")
	kanaSheet.register(kanaCmd, "Practice direction: romaji-to-hiragana|romaji-to-katakana|hiragana-to-romaji|katakana-to-romaji")
}
