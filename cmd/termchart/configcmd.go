package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bamsammich/termchart/internal/config"
)

func newConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			path := config.Path()
			if path == "" {
				return errors.New("no config location: set TERMCHART_CONFIG or HOME")
			}
			_, err := fmt.Fprintln(g.out, path)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a starter config file with every default spelled out",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			path := config.Path()
			if path == "" {
				return errors.New("no config location: set TERMCHART_CONFIG or HOME")
			}
			if err := config.Write(path, config.Starter()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(g.out, "wrote %s\n", path)
			return err
		},
	})
	return cmd
}
