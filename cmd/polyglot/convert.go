package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/polyglot/pkg/polyglot/colorword"
	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/timeword"
)

func newDurationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duration VALUE...",
		Short: "Parse durations given as numbers or rate keywords",
		Example: `  polyglot duration 1500 90s 2h täglich hourly
  polyglot duration 0x10s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, s := range args {
				d, err := comp.Durations.Parse(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%d\n", s, timeword.FormatDuration(d), d.Milliseconds())
			}
			return nil
		},
	}
}

func newColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color DEFINITION...",
		Short: "Parse colours given as names, abbreviations or numbers",
		Example: `  polyglot color rot "#ff8000" 0x00ff00
  polyglot color "farbe=dunkelblau"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, def := range args {
				c, ok := comp.Colors.Parse(def)
				if !ok {
					return fmt.Errorf("%w: colour %q", internalerr.ErrInvalidInput, def)
				}
				fmt.Fprintf(out, "%s\t%s\tfg=%s\n", def, colorword.Hex(c), colorword.Hex(colorword.Foreground(c)))
			}
			return nil
		},
	}
}
