package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kanadrill configuration file values.",
	Long: `Create, edit, display, and delete the kanadrill configuration file.

The configuration stores defaults for every command:
- import.partial_warning_ratio / import.headers.*
- drill.kana_direction / drill.vocab_direction / drill.random_order / drill.count
- output.format / output.page_width / output.answers
- vocab.fill_readings

Every key can also be set from the environment, e.g. KANADRILL_DRILL_COUNT=20,
or from a .env file in the working directory.`,
	Example: `
  # Create default config in $HOME/.kanadrill.yaml
  kanadrill config create

  # Show active config and source file
  kanadrill config show

  # Open active config in editor (creates example if missing)
  kanadrill config edit

  # Delete active config file
  kanadrill config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
