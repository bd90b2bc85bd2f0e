package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kanadrill/kana"
)

var kanaRowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "List the kana rows and their characters.",
	Example: `
  kanadrill kana rows
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, row := range kana.Rows() {
			chars := make([]string, 0, len(row.Characters))
			for _, char := range row.Characters {
				chars = append(chars, fmt.Sprintf("%s%s(%s)", char.Hiragana, char.Katakana, char.Romaji))
			}
			fmt.Fprintf(out, "%s [%s]: %s\n", row.Name, row.Alias, strings.Join(chars, " "))
		}
		return nil
	},
}

func init() {
	kanaCmd.AddCommand(kanaRowsCmd)
}
