package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/katalvlaran/lvtile/gridgraph"
	"github.com/katalvlaran/lvtile/internal/config"
	"github.com/katalvlaran/lvtile/internal/logger"
	"github.com/katalvlaran/lvtile/internal/metrics"
	"github.com/katalvlaran/lvtile/tiling"
)

// Exit codes returned through cli.NewExitError.
const (
	exitIOError     = 1
	exitConfigError = 2
)

// stdinName labels the plan read from standard input.
const stdinName = "-"

// stdin is read when no FILE arguments are given.
var stdin io.Reader = os.Stdin

type plan struct {
	name string
	text string
}

func checkCommand() cli.Command {
	return cli.Command{
		Name:      "check",
		Usage:     "Report whether each plan is tileable",
		ArgsUsage: "[FILE...]",
		Description: `Reads each FILE, or standard input when none is given, and prints
   "tileable" or "not tileable". With several files every line is
   prefixed by the file name.`,
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "show",
				Usage: "[optional] Draw the dominoes found, one letter pair per domino",
			},
			cli.StringFlag{
				Name:  "config",
				Usage: "[optional] YAML config file (overrides LVTILE_CONFIG)",
			},
			cli.BoolFlag{
				Name:  "precheck",
				Usage: "[optional] Reject unbalanced connected regions before running flow",
			},
			cli.StringFlag{
				Name:  "metrics.textfile",
				Usage: "[optional] Write Prometheus metrics to this file on exit",
			},
		},
		Action: runCheck,
	}
}

func runCheck(c *cli.Context) error {
	// 1) Configuration: defaults < file < env < flags
	var loaderOpts []config.LoaderOption
	if path := c.String("config"); path != "" {
		loaderOpts = append(loaderOpts, config.WithFile(path))
	}
	cfg, err := config.NewLoader(loaderOpts...).Load()
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("lvtile: %v", err), exitConfigError)
	}
	applyFlags(c, cfg)

	log := logger.New(cfg.Log.Logger())

	// 2) Checker
	opts := []tiling.Option{tiling.WithLogger(log)}
	if cfg.Tiling.ComponentPrecheck {
		opts = append(opts, tiling.WithComponentPrecheck())
	}
	var rec *metrics.Recorder
	if cfg.Metrics.Enabled || cfg.Metrics.Textfile != "" {
		rec = metrics.NewRecorder()
		opts = append(opts, tiling.WithObserver(rec))
	}
	checker := tiling.NewChecker(opts...)

	// 3) Plans
	plans, err := readPlans(c.Args(), stdin)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("lvtile: %v", err), exitIOError)
	}

	// 4) Verdicts
	w := c.App.Writer
	for _, p := range plans {
		res := checker.Solve(p.text)
		log.Info("plan checked",
			slog.String("plan", p.name),
			slog.Bool("tileable", res.Tileable),
			slog.String("reason", string(res.Reason)),
		)
		if err := report(w, p, res, len(plans) > 1, c.Bool("show")); err != nil {
			return cli.NewExitError(fmt.Sprintf("lvtile: %v", err), exitIOError)
		}
	}

	// 5) Metrics export
	if rec != nil && cfg.Metrics.Textfile != "" {
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return cli.NewExitError(fmt.Sprintf("lvtile: write metrics: %v", err), exitIOError)
		}
	}

	return nil
}

// applyFlags lets command-line flags override loaded settings.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.GlobalBool("log.debug") {
		cfg.Log.Level = "debug"
	}
	if c.GlobalBool("log.json") {
		cfg.Log.Format = "json"
	}
	if c.Bool("precheck") {
		cfg.Tiling.ComponentPrecheck = true
	}
	if path := c.String("metrics.textfile"); path != "" {
		cfg.Metrics.Textfile = path
	}
}

// readPlans loads every named file, or stdin when names is empty.
// Windows line endings are folded to '\n'.
func readPlans(names []string, in io.Reader) ([]plan, error) {
	if len(names) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []plan{{name: stdinName, text: normalize(string(data))}}, nil
	}

	plans := make([]plan, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read plan: %w", err)
		}
		plans = append(plans, plan{name: name, text: normalize(string(data))})
	}
	return plans, nil
}

func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

func verdict(tileable bool) string {
	if tileable {
		return "tileable"
	}
	return "not tileable"
}

func report(w io.Writer, p plan, res *tiling.Result, named, show bool) error {
	line := verdict(res.Tileable)
	if named {
		line = p.name + ": " + line
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if !show {
		return nil
	}
	_, err := io.WriteString(w, tiling.Render(gridgraph.Parse(p.text), res.Dominoes))
	return err
}
