package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bamsammich/termchart/internal/config"
)

// Config configures the dashboard presenter.
type Config struct {
	Load     Loader
	Source   string
	Interval time.Duration
	Theme    config.ThemeConfig
}

// Presenter wraps a Bubble Tea program running the dashboard.
type Presenter struct {
	cfg   Config
	model Model
}

// NewPresenter creates a new dashboard presenter.
func NewPresenter(cfg Config) *Presenter {
	ApplyTheme(cfg.Theme)
	return &Presenter{cfg: cfg}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func (p *Presenter) Run(ctx context.Context) error {
	p.model = NewModel(p.cfg.Load, p.cfg.Source, p.cfg.Interval)
	prog := tea.NewProgram(
		p.model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	finalModel, err := prog.Run()
	if err != nil {
		return stopped(ctx, err)
	}
	p.model = finalModel.(Model)
	return nil
}

// Err returns the last reload error seen before the dashboard exited.
func (p *Presenter) Err() error {
	return p.model.err
}

// stopped treats a program killed by ctx cancellation (SIGINT, SIGTERM) as a
// normal exit.
func stopped(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
