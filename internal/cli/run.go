package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"quizrun/internal/config"
	"quizrun/internal/console"
	"quizrun/internal/session"
	"quizrun/internal/ui/live"
)

// startLive launches the live UI; tests replace it.
var startLive = func(stdin io.Reader, stdout io.Writer, opts live.Options) liveUI {
	return live.Start(stdin, stdout, opts)
}

// liveUI is the part of the live controller the run command drives.
type liveUI interface {
	session.LineReader
	session.LineWriter
	session.Observer
	Close()
	Wait()
}

type runFlags struct {
	configPath string
	questions  string
	table      string
	secs       int
	mins       int
	shuffle    bool
	noWait     bool
	noLimit    bool
	ui         string
	noColor    bool
	verbose    bool
}

func runRun(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		var opts runFlags
		fs.StringVar(&opts.questions, "csv", "", "Question file (csv, xlsx, yml, json, or duckdb)")
		fs.StringVar(&opts.questions, "c", "", "Shorthand for --csv")
		fs.StringVar(&opts.questions, "questions", "", "Alias for --csv")
		fs.StringVar(&opts.table, "table", "", "DuckDB table holding the questions")
		fs.IntVar(&opts.secs, "secs", 0, "Time limit in seconds")
		fs.IntVar(&opts.secs, "s", 0, "Shorthand for --secs")
		fs.IntVar(&opts.mins, "mins", 0, "Time limit in minutes")
		fs.IntVar(&opts.mins, "m", 0, "Shorthand for --mins")
		fs.BoolVar(&opts.noLimit, "no-limit", false, "Run without a time limit")
		fs.BoolVar(&opts.shuffle, "shuffle", false, "Shuffle question order")
		fs.BoolVar(&opts.noWait, "no-wait", false, "Start without waiting for Enter")
		fs.StringVar(&opts.ui, "ui", "", "UI mode: auto|live|plain")
		fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
		fs.BoolVar(&opts.verbose, "verbose", false, "Log session events to stderr")
		fs.StringVar(&opts.configPath, "config", "", "Path to config file (default: ./.quizrun.yml when present)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadSettings(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if err := applyRunFlags(&cfg, opts, visited(fs)); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		decision, err := resolveUIMode(cfg.UI, opts.verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid ui mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, console.FormatWarning(decision.warning, console.UseStyling(stderr, cfg.NoColor)))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		path := questionsPath(cfg)
		params := session.RunParams{
			Source:       newSource(path, cfg.Table),
			Duration:     cfg.TimeLimit,
			NoTimeLimit:  cfg.NoTimeLimit,
			Shuffle:      cfg.Shuffle,
			WaitForReady: cfg.WaitForReady,
		}

		out := console.NewLineWriter(stdout)
		var result session.Result
		if decision.useLive {
			// Quitting the UI cancels the session before its input closes.
			liveCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			ui := startLive(stdin, stdout, live.Options{NoColor: cfg.NoColor, OnAbort: cancel})
			params.Input = ui
			params.Output = ui
			params.Observer = ui
			result, err = session.Run(liveCtx, params)
			ui.Close()
			ui.Wait()
		} else {
			params.Input = console.NewLineReader(stdin)
			params.Output = out
			if opts.verbose {
				params.Observer = session.NewVerboseObserver(stderr, cfg.NoColor)
			}
			result, err = session.Run(ctx, params)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Problem opening questions %s: %v\n", path, err)
			return ExitError
		}

		printResult(out, result, console.UseStyling(stdout, cfg.NoColor))
		return ExitOK
	}
}

// applyRunFlags overlays explicitly set flags onto the loaded settings.
func applyRunFlags(cfg *config.Config, opts runFlags, set map[string]bool) error {
	secsSet := set["secs"] || set["s"]
	minsSet := set["mins"] || set["m"]
	switch {
	case secsSet && minsSet:
		return fmt.Errorf("use either --secs or --mins, not both")
	case opts.noLimit && (secsSet || minsSet):
		return fmt.Errorf("--no-limit cannot be combined with --secs or --mins")
	case opts.noLimit:
		cfg.NoTimeLimit = true
	case secsSet:
		if opts.secs < 0 {
			return fmt.Errorf("--secs must not be negative")
		}
		cfg.TimeLimit = time.Duration(opts.secs) * time.Second
		cfg.NoTimeLimit = false
	case minsSet:
		if opts.mins < 0 {
			return fmt.Errorf("--mins must not be negative")
		}
		cfg.TimeLimit = time.Duration(opts.mins) * time.Minute
		cfg.NoTimeLimit = false
	}
	if set["csv"] || set["c"] || set["questions"] {
		cfg.Questions = opts.questions
	}
	if set["table"] {
		cfg.Table = opts.table
	}
	if opts.shuffle {
		cfg.Shuffle = true
	}
	if opts.noWait {
		cfg.WaitForReady = false
	}
	if set["ui"] {
		cfg.UI = opts.ui
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	return nil
}

// Notices printed above the score for sessions that did not run to the end.
const (
	InterruptedNotice = "Something went wrong. Exiting quiz."
	CanceledNotice    = "Quiz canceled."
)

func printResult(out session.LineWriter, result session.Result, styled bool) {
	out.WriteLine("")
	switch result.Outcome {
	case session.OutcomeTimedOut:
		out.WriteLine(console.FormatTimeUp(styled))
	case session.OutcomeInterrupted:
		out.WriteLine(console.FormatWarning(InterruptedNotice, styled))
	case session.OutcomeCanceled:
		out.WriteLine(console.FormatWarning(CanceledNotice, styled))
	}
	out.WriteLine(console.FormatScore(result.Correct, result.Total, styled))
}
