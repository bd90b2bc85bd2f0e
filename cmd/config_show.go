package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kanadrill/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Without a
config file the built-in defaults are shown.`,
	Example: `
  # Show active configuration
  kanadrill config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		out := cmd.OutOrStdout()
		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		} else {
			fmt.Fprintln(out, "No config file loaded, using built-in defaults.")
		}
		fmt.Fprintln(out, "Configuration:")
		printConfig(out, *cfg)
		return nil
	},
}

func printConfig(out io.Writer, cfg config.Config) {
	fmt.Fprintf(out, "%s: %g\n", config.KeyImportPartialWarningRatio, cfg.Import.PartialWarningRatio)
	fmt.Fprintf(out, "%s: %s\n", config.KeyImportHeadersSource, strings.Join(cfg.Import.Headers.Source, ", "))
	fmt.Fprintf(out, "%s: %s\n", config.KeyImportHeadersTarget, strings.Join(cfg.Import.Headers.Target, ", "))
	fmt.Fprintf(out, "%s: %s\n", config.KeyImportHeadersPronounce, strings.Join(cfg.Import.Headers.Pronunciation, ", "))
	fmt.Fprintf(out, "%s: %s\n", config.KeyImportHeadersExample, strings.Join(cfg.Import.Headers.Example, ", "))
	fmt.Fprintf(out, "%s: %s\n", config.KeyDrillKanaDirection, cfg.Drill.KanaDirection)
	fmt.Fprintf(out, "%s: %s\n", config.KeyDrillVocabDirection, cfg.Drill.VocabDirection)
	fmt.Fprintf(out, "%s: %t\n", config.KeyDrillRandomOrder, cfg.Drill.RandomOrder)
	fmt.Fprintf(out, "%s: %d\n", config.KeyDrillCount, cfg.Drill.Count)
	fmt.Fprintf(out, "%s: %s\n", config.KeyOutputFormat, cfg.Output.Format)
	fmt.Fprintf(out, "%s: %s\n", config.KeyOutputPageWidth, cfg.Output.PageWidth)
	fmt.Fprintf(out, "%s: %t\n", config.KeyOutputAnswers, cfg.Output.Answers)
	fmt.Fprintf(out, "%s: %t\n", config.KeyVocabFillReadings, cfg.Vocab.FillReadings)
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
