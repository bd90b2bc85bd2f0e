/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kanadrill/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kanadrill",
	Short: "Generate printable Japanese kana and vocabulary practice sheets.",
	Long: `
**********************************************
*               KANA DRILL                   *
**********************************************

This CLI builds practice sheets for the kana syllabary (hiragana, katakana, romaji)
and for your own vocabulary lists imported from spreadsheets.

Supported input formats:
- Excel: .xlsx, .xls

Supported output formats:
- HTML (printable, 3in receipt or A4)
- Excel: .xlsx
- CSV: .csv
`,
	Example: `
  # Create configuration file
  kanadrill config create

  # Romaji to hiragana sheet for all rows
  kanadrill kana -o kana.html

  # Katakana to romaji for two rows, in table order
  kanadrill kana --rows ka,sa --direction katakana-to-romaji --ordered -o kana.html

  # Check how a vocabulary workbook is read
  kanadrill vocab import -i words.xlsx

  # Ten random words, Japanese to Chinese
  kanadrill vocab sheet -i words.xlsx -o words.html

  # Rebuild the sheet whenever the workbook is saved
  kanadrill vocab watch -i words.xlsx -o words.html --notify
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.kanadrill.yaml, then ./.kanadrill.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kanadrill")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		fmt.Fprintf(os.Stderr, "Warning: could not read config file: %v\n", err)
	}
}
