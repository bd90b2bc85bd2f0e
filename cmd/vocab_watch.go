package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"

	"kanadrill/config"
	"kanadrill/drill"
	"kanadrill/internal/watch"
	"kanadrill/output"
)

const notifyTitle = "kanadrill"

var (
	vocabWatchInput        string
	vocabWatchFillReadings bool
	vocabWatchNotify       bool
	vocabWatchDelay        time.Duration
	vocabWatch             sheetFlags
)

var vocabWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rewrite a vocabulary sheet whenever the workbook changes.",
	Long: `Watch a vocabulary workbook and rebuild the practice sheet each time it is saved.

Bursts of file events are debounced. Parses run one at a time; a save that
arrives during a parse triggers exactly one more run afterwards. A failed parse
keeps the previous word list and sheet. Stop with Ctrl+C.`,
	Example: `
  # Rebuild words.html on every save, with desktop notifications
  kanadrill vocab watch -i words.xlsx -o words.html --notify
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		opts, err := vocabWatch.drillOptions(cmd, cfg, false)
		if err != nil {
			return err
		}
		writer, err := vocabWatch.writer(cmd, cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fill := fillReadingsEnabled(cmd, vocabWatchFillReadings, cfg.Vocab.FillReadings)
		run := newWatchRun(cfg, opts, writer, vocabWatch.output, fill, vocabWatchNotify, cmd.OutOrStdout(), cmd.ErrOrStderr())

		watcher := watch.New(vocabWatchInput, run.handle)
		watcher.Delay = vocabWatchDelay
		watcher.OnError = func(err error) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: watcher error: %v\n", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", vocabWatchInput)
		return watcher.Run(ctx)
	},
}

// watchRun is the job executed on every debounced change.
type watchRun struct {
	session    *drill.Session
	cfg        config.Config
	opts       drill.Options
	writer     output.Writer
	outputPath string
	fill       bool
	notify     func(title, message string, failed bool)
	out        io.Writer
	errOut     io.Writer
}

func newWatchRun(cfg config.Config, opts drill.Options, writer output.Writer, outputPath string, fill, notify bool, out, errOut io.Writer) *watchRun {
	run := &watchRun{
		session:    drill.NewSession(opts.Rand),
		cfg:        cfg,
		opts:       opts,
		writer:     writer,
		outputPath: outputPath,
		fill:       fill,
		out:        out,
		errOut:     errOut,
	}
	if notify {
		run.notify = desktopNotify(errOut)
	}
	return run
}

func (r *watchRun) handle(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}

	sheet, words, err := buildVocabSheet(r.session, path, r.outputPath, r.cfg, r.fill, r.opts, r.writer, r.errOut)
	stamp := time.Now().Format("15:04:05")
	if err != nil {
		fmt.Fprintf(r.errOut, "[%s] Update failed, keeping previous sheet: %v\n", stamp, err)
		if r.notify != nil {
			r.notify(notifyTitle, "更新失败，保留上一份练习: "+err.Error(), true)
		}
		return
	}

	fmt.Fprintf(r.out, "[%s] Sheet updated: %s (%d of %d words)\n", stamp, r.outputPath, sheet.Len(), words)
	if r.notify != nil {
		r.notify(notifyTitle, fmt.Sprintf("成功解析 %d 个单词", words), false)
	}
}

func desktopNotify(errOut io.Writer) func(title, message string, failed bool) {
	return func(title, message string, failed bool) {
		send := beeep.Notify
		if failed {
			send = beeep.Alert
		}
		if err := send(title, message, ""); err != nil {
			fmt.Fprintf(errOut, "Warning: desktop notification failed: %v\n", err)
		}
	}
}

func init() {
	vocabCmd.AddCommand(vocabWatchCmd)

	vocabWatchCmd.Flags().StringVarP(&vocabWatchInput, "input", "i", "", "Vocabulary workbook (.xlsx or .xls) to watch")
	vocabWatchCmd.Flags().BoolVar(&vocabWatchFillReadings, "fill-readings", false, "Fill missing pronunciations from the built-in dictionary")
	vocabWatchCmd.Flags().BoolVar(&vocabWatchNotify, "notify", false, "Show a desktop notification after each run")
	vocabWatchCmd.Flags().DurationVar(&vocabWatchDelay, "debounce", watch.DefaultDelay, "Quiet period before a change is processed")
	vocabWatch.register(vocabWatchCmd, "Practice direction: jp-to-cn|cn-to-jp")

	_ = vocabWatchCmd.MarkFlagRequired("input")
}
