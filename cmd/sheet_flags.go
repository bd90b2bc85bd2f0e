package cmd

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"kanadrill/config"
	"kanadrill/drill"
	"kanadrill/output"
)

// sheetFlags are the flags shared by every command that writes a sheet.
type sheetFlags struct {
	output    string
	format    string
	direction string
	pageWidth string
	count     int
	ordered   bool
	noAnswers bool
	seed      uint64
}

func (f *sheetFlags) register(cmd *cobra.Command, directionHelp string) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (.html, .xlsx or .csv)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: html|excel|csv (optional, inferred from the output extension when omitted)")
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", directionHelp)
	cmd.Flags().StringVar(&f.pageWidth, "page-width", "", "Page size for HTML output: 3in|a4")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "Number of questions (0 = all)")
	cmd.Flags().BoolVar(&f.ordered, "ordered", false, "Keep source order instead of shuffling")
	cmd.Flags().BoolVar(&f.noAnswers, "no-answers", false, "Omit the answer section")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for a reproducible order (0 = random)")

	_ = cmd.MarkFlagRequired("output")
}

// drillOptions merges flags over config values. Flags only win when set.
func (f *sheetFlags) drillOptions(cmd *cobra.Command, cfg config.Config, kana bool) (drill.Options, error) {
	direction := cfg.Drill.VocabDirection
	count := cfg.Drill.Count
	if kana {
		direction = cfg.Drill.KanaDirection
		count = 0
	}
	if cmd.Flags().Changed("direction") {
		direction = f.direction
	}
	if cmd.Flags().Changed("count") {
		count = f.count
	}

	parsed, err := drill.ParseDirection(direction)
	if err != nil {
		return drill.Options{}, err
	}
	if kana && !parsed.IsKana() {
		return drill.Options{}, fmt.Errorf("direction %q is not a kana direction (supported: %s)", direction, joinDirections(drill.KanaDirections()))
	}
	if !kana && !parsed.IsVocab() {
		return drill.Options{}, fmt.Errorf("direction %q is not a vocabulary direction (supported: %s)", direction, joinDirections(drill.VocabDirections()))
	}
	if count < 0 {
		return drill.Options{}, fmt.Errorf("count must not be negative, got %d", count)
	}

	shuffle := cfg.Drill.RandomOrder
	if cmd.Flags().Changed("ordered") {
		shuffle = !f.ordered
	}

	return drill.Options{
		Direction: parsed,
		Shuffle:   shuffle,
		Count:     count,
		Rand:      newRand(f.seed),
	}, nil
}

func (f *sheetFlags) writer(cmd *cobra.Command, cfg config.Config) (output.Writer, error) {
	layout := output.Layout{
		Answers:   cfg.Output.Answers,
		PageWidth: cfg.Output.PageWidth,
	}
	if cmd.Flags().Changed("no-answers") {
		layout.Answers = !f.noAnswers
	}
	if cmd.Flags().Changed("page-width") {
		layout.PageWidth = f.pageWidth
	}

	return output.WriterForFormat(resolveOutputFormat(f.format, f.output, cfg.Output.Format), layout)
}

// resolveOutputFormat prefers the explicit flag, then the output extension,
// then the configured default.
func resolveOutputFormat(flagValue, path, configured string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if filepath.Ext(path) != "" {
		return output.DetectFormat(path)
	}
	return configured
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func joinDirections(directions []drill.Direction) string {
	names := make([]string, len(directions))
	for i, d := range directions {
		names[i] = string(d)
	}
	return strings.Join(names, "|")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return *cfg, nil
}
