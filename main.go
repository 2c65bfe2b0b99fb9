package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"github.com/apxxxxxxe/contrast/config"
	"github.com/apxxxxxxe/contrast/matrix"
	"github.com/apxxxxxxe/contrast/palette"
	"github.com/apxxxxxxe/contrast/report"
	"github.com/apxxxxxxe/contrast/tui"
)

const usage = `usage: contrast [flags] <file>

Shows the WCAG 2.0 contrast of every pair of colors in <file>, a
tab-separated list of "label<TAB>r,g,b" lines.

flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("contrast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "config file (.toml, .yaml, .yml or .json)")
		view       = fs.String("view", "", "grid|report|table (default grid)")
		colorMode  = fs.String("color", "", "auto|always|never, report view only")
		width      = fs.Int("width", 0, "report width (default: terminal width)")
	)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	errColor := color.New(color.FgRed, color.Bold)
	fail := func(err error) int {
		errColor.Fprintf(stderr, "contrast: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fail(err)
	}
	if *view != "" {
		cfg.Display.View = *view
	}
	if *colorMode != "" {
		cfg.Display.Color = *colorMode
	}
	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return fail(err)
	}
	defer closeLog()

	p, err := palette.Load(fs.Arg(0), cfg.Input.Strict)
	if err != nil {
		return fail(err)
	}
	warn := color.New(color.FgYellow)
	for _, rejected := range p.Rejected {
		warn.Fprintf(stderr, "contrast: skipping %v\n", rejected)
	}

	m, err := matrix.Build(p.Entries)
	if err != nil {
		return fail(err)
	}
	slog.Info("contrast matrix built",
		slog.Int("colors", m.Size()),
		slog.Int("aa_pass", m.AAPassCount()),
		slog.Int("aaa_pass", m.AAAPassCount()),
		slog.String("view", cfg.Display.View),
	)

	switch cfg.Display.View {
	case config.ViewReport:
		w := *width
		if w <= 0 {
			w = report.Width(stdout)
		}
		colored := report.ColorEnabled(cfg.Display.Color, stdout, os.Getenv)
		err = report.NewWriter(w, colored).Write(stdout, p.Entries, m)
	case config.ViewTable:
		err = tui.NewTui(p.Entries, m).Run()
	default:
		limits := cfg.Display.Limits()
		err = tui.WithScreen(func(screen tcell.Screen) error {
			return tui.Display(tui.NewScreenSurface(screen, limits), p.Entries, m, limits)
		})
	}
	if err != nil {
		slog.Error("render failed", slog.String("error", err.Error()))
		return fail(err)
	}
	return 0
}

func loadConfig(explicit string) (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	home, _ := os.UserHomeDir()
	path, _, err := config.Find(explicit, cwd, os.Getenv("XDG_CONFIG_HOME"), home)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging installs the default slog logger. Without a log file the
// output is discarded, since the terminal belongs to the grid.
func setupLogging(cfg config.LogConfig) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}
