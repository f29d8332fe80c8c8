package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/menu-overlay/internal/backend"
	"github.com/atomicstack/menu-overlay/internal/data/dispatcher"
	"github.com/atomicstack/menu-overlay/internal/logging/events"
	"github.com/atomicstack/menu-overlay/internal/menu"
	"github.com/atomicstack/menu-overlay/internal/theme"
	"github.com/atomicstack/menu-overlay/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	InputPath       string
	Follow          bool
	Width           int
	MaxVisibleItems int
	Align           menu.Align
	Interactive     bool
	Theme           theme.Overrides
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Exit(err) }()

	input, closeInput, err := openInput(cfg.InputPath, cfg.Follow)
	if err != nil {
		return err
	}
	defer closeInput()

	feed := backend.NewFeed(input)
	defer feed.Stop()

	model := NewModel(cfg, feed)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.InputPath == "" {
		// stdin carries host messages, so the keyboard is not read.
		opts = append(opts, tea.WithInput(nil))
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

// NewModel builds the UI model for cfg reading host messages from feed.
func NewModel(cfg Config, feed *backend.Feed) *ui.Model {
	d := dispatcher.New(dispatcher.Defaults{
		MaxVisibleItems: cfg.MaxVisibleItems,
		Align:           cfg.Align,
	}, nil)
	return ui.NewModel(cfg.Width, cfg.Interactive, theme.New(cfg.Theme), feed, d)
}

// openInput returns the host message source. A followed file keeps being
// read as the host appends to it.
func openInput(path string, follow bool) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	if follow {
		r, err := backend.FollowFile(path)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
