package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kanadrill/config"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active kanadrill config file in $VISUAL, $EDITOR or vi.

A missing config file is first created from the example template. When the
editor exits the file is validated and the resulting drill and output
settings are printed. Unknown directions, formats, page widths and header
labels listed for two columns are rejected.`,
	Example: `
  # Edit active config
  kanadrill config edit

  # Edit with a specific editor
  EDITOR="code --wait" kanadrill config edit
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := configFilePath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		created, err := writeExampleConfig(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "No config file found. Created example config at: %s\n", configPath)
		}

		editor := editorCommand(os.Getenv, configPath)
		editor.Stdin = cmd.InOrStdin()
		editor.Stdout = out
		editor.Stderr = cmd.ErrOrStderr()
		if err := editor.Run(); err != nil {
			return fmt.Errorf("run editor %s: %w", editor.Path, err)
		}

		cfg, err := validateConfigFile(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Configuration saved and validated: %s\n", configPath)
		printConfig(out, *cfg)
		return nil
	},
}

// editorCommand builds the editor invocation from $VISUAL or $EDITOR, which
// may carry arguments such as "code --wait".
func editorCommand(getenv func(string) string, configPath string) *exec.Cmd {
	value := "vi"
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			value = v
			break
		}
	}

	fields := strings.Fields(value)
	args := append(fields[1:], configPath)
	return exec.Command(fields[0], args...)
}

func validateConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edited config: %w", err)
	}
	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return nil, fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return cfg, nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
