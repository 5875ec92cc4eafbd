package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bamsammich/termchart/internal/dataset"
	"github.com/bamsammich/termchart/internal/ui"
	"github.com/bamsammich/termchart/internal/ui/tui"
)

func newDashCmd(g *globals) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "dash <file>",
		Short: "Full-screen dashboard that reloads a dataset file",
		Long: `Open a full-screen dashboard over a dataset file.

The file is reloaded every --interval; its latest series value feeds a live
sparkline. Views: 1 overview, 2 area, 3 categories, 4 geo (tab cycles).
r reloads now, c clears the live samples, s saves the current view as text,
q quits.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if path == dataset.Stdin {
				return errors.New("dash needs a file, not stdin")
			}
			if !ui.IsTTY(os.Stdout.Fd()) {
				return errors.New("dash requires a terminal")
			}
			f, err := g.parsedFormat()
			if err != nil {
				return err
			}

			p := tui.NewPresenter(tui.Config{
				Load:     func() (*dataset.Dataset, error) { return dataset.Load(path, f) },
				Source:   path,
				Interval: interval,
				Theme:    g.cfg.Theme,
			})
			if err := p.Run(cmd.Context()); err != nil {
				return err
			}
			if err := p.Err(); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", tui.DefaultInterval, "reload period")
	return cmd
}
