// Command scrollrouter-demo is a terminal pager for long reference pages.
// The sidebar follows the section at the top of the screen and the status
// line shows the address bar as it would appear in a browser.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/platform/evdevinput"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/sidenav"
)

// Terminal tuning: rows instead of pixels, and no fixed header to clear.
var terminalScroll = scrollrouter.ScrollConfig{
	ThrottleMS:       60,
	MinDelta:         3,
	ActivationOffset: 1,
	UpwardLead:       0,
}

type flags struct {
	configPath  string
	route       string
	lang        string
	logFile     string
	logLevel    string
	wheelDevice string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "scrollrouter-demo [file]",
		Short:        "Page through a long document with a section-following sidebar",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := sampleDocument
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read document: %w", err)
				}
				text = string(data)
			}
			return run(cmd.Context(), text, f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML config file (defaults suit a terminal)")
	cmd.Flags().StringVar(&f.route, "route", "/", "Initial address, e.g. /budgets to open at that section")
	cmd.Flags().StringVar(&f.lang, "lang", "en", "Language for the progress label")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Write JSON logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.Flags().StringVar(&f.wheelDevice, "wheel-device", "", "Also scroll from this evdev device (Linux)")
	return cmd
}

func loadConfig(path string) (scrollrouter.Config, error) {
	if path == "" {
		cfg := scrollrouter.DefaultConfig()
		cfg.Scroll = terminalScroll
		return cfg, nil
	}
	return scrollrouter.LoadConfig(path)
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: lv}))
	return logger, func() { _ = file.Close() }, nil
}

func run(ctx context.Context, text string, f flags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(f.logFile, f.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	lang, err := language.Parse(f.lang)
	if err != nil {
		return fmt.Errorf("parse --lang: %w", err)
	}

	doc, err := parseDocument(text)
	if err != nil {
		return err
	}

	m, err := newModel(doc, cfg, f.route, lang, logger)
	if err != nil {
		return err
	}
	defer m.router.Close()
	defer m.nav.Close()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	unsubscribe := m.router.Subscribe(func(string) {
		go program.Send(activeChangedMsg{})
	})
	defer unsubscribe()

	if f.wheelDevice != "" {
		reader, err := evdevinput.Open(f.wheelDevice, m.page, 1)
		if err != nil {
			return err
		}
		defer reader.Close()

		wheelCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := reader.Run(wheelCtx); err != nil && wheelCtx.Err() == nil {
				logger.Error("wheel device stopped", "error", err)
			}
		}()
	}

	_, err = program.Run()
	return err
}

func newModel(doc *document, cfg scrollrouter.Config, initialURL string, lang language.Tag, logger *slog.Logger) (*model, error) {
	addressBar := history.NewMemory(initialURL)
	pg := page.New(1)

	opts := scrollrouter.DefaultOptions()
	cfg.Apply(&opts)
	opts.Viewport = pg
	opts.History = addressBar
	opts.Logger = logger
	router := scrollrouter.New(opts)

	links := make([]sidenav.Link, 0, len(doc.sections))
	for _, s := range doc.sections {
		links = append(links, sidenav.Link{Title: s.title, Route: s.route})
	}
	nav, err := sidenav.New(router, links, sidenav.WithLanguage(lang))
	if err != nil {
		return nil, err
	}

	for _, s := range doc.sections {
		router.Track(pg.AddSection(float64(s.top), float64(len(s.lines))), s.route)
	}
	if _, err := router.Mount(pg); err != nil {
		return nil, err
	}

	return &model{
		doc:     doc,
		page:    pg,
		router:  router,
		nav:     nav,
		history: addressBar,
	}, nil
}
