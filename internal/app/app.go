package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/artex/internal/config"
	"github.com/five82/artex/internal/gallery"
	"github.com/five82/artex/internal/met"
	"github.com/five82/artex/internal/prefs"
	"github.com/five82/artex/internal/state"
	"github.com/five82/artex/internal/telemetry"
	"github.com/five82/artex/internal/ui"
)

// Options configure the artex application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/artex/config.toml
	PrefsPath  string // empty uses default ~/.config/artex/prefs.toml
	// InitialQuery is searched as soon as the UI starts.
	InitialQuery string
}

// Run boots the artex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	fetcher, err := NewFetcher(cfg)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	log.Printf("artex starting: api=%s dark=%t tracing=%t", cfg.APIBase, userPrefs.Dark, cfg.TracingEnabled())

	return ui.Run(ui.Options{
		Context:      ctx,
		Fetcher:      fetcher,
		Store:        &state.Store{},
		Controller:   gallery.NewController(userPrefs.Dark),
		Debounce:     cfg.Debounce,
		PrefsPath:    opts.PrefsPath,
		InitialQuery: opts.InitialQuery,
	})
}

// NewFetcher builds the collection client and fetcher described by cfg.
func NewFetcher(cfg config.Config) (*gallery.Fetcher, error) {
	client, err := met.NewClient(cfg.APIBase, met.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("init collection client: %w", err)
	}
	return gallery.NewFetcher(client), nil
}

// openLog sends the standard logger to path so log lines never draw over
// the alternate screen. An empty path discards logging.
func openLog(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "artex")
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open log %s", path), err)
	}
	return f, nil
}
