package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/polyglot/pkg/polyglot/action"
	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/tables"
)

const suggestLimit = 3

type resolveOpts struct {
	table string
	codes []string
}

func (o *resolveOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.table, "table", "t", tables.TimeTable, "candidate table")
	cmd.Flags().StringSliceVar(&o.codes, "code", nil, "only accept actions with these codes (name or number)")
}

// selection returns the chosen table and filter.
func (o *resolveOpts) selection(reg *tables.Registry) (action.Table, action.Filter, error) {
	t, ok := reg.Table(o.table)
	if !ok {
		return nil, nil, fmt.Errorf("%w: table %q (have %s)",
			internalerr.ErrNotFound, o.table, strings.Join(reg.Names(), ", "))
	}
	if len(o.codes) == 0 {
		return t, action.All, nil
	}
	codes := make([]action.Code, 0, len(o.codes))
	for _, s := range o.codes {
		c, err := action.ParseCode(s)
		if err != nil {
			return nil, nil, err
		}
		codes = append(codes, c)
	}
	return t, action.ByCodes(codes...), nil
}

func newResolveCmd(a *app) *cobra.Command {
	var opts resolveOpts
	cmd := &cobra.Command{
		Use:   "resolve TOKEN...",
		Short: "Resolve keywords or abbreviations to actions",
		Example: `  polyglot resolve Mo Dez mez
  polyglot resolve -t rate täg
  polyglot resolve -t color --code color rot`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			t, filter, err := opts.selection(comp.Registry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, tok := range args {
				act, err := action.ResolveErr(t, filter, tok, comp.IgnoreCase)
				if err == nil {
					fmt.Fprintf(out, "%s\t%s\n", tok, act)
					continue
				}
				failed++
				a.logger.Debug("token not resolved", zap.String("token", tok), zap.Error(err))
				fmt.Fprintf(out, "%s\t%s", tok, reason(err))
				if errors.Is(err, internalerr.ErrNoMatch) {
					if sug := action.Suggest(t, filter, tok, suggestLimit); len(sug) > 0 {
						words := make([]string, len(sug))
						for i, s := range sug {
							words[i] = s.Keyword
						}
						fmt.Fprintf(out, " (did you mean %s?)", strings.Join(words, ", "))
					}
				}
				fmt.Fprintln(out)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tokens not resolved", failed, len(args))
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func reason(err error) string {
	switch {
	case errors.Is(err, internalerr.ErrAmbiguous):
		return "ambiguous"
	case errors.Is(err, internalerr.ErrInvalidToken):
		return "invalid"
	default:
		return "no match"
	}
}

func newCandidatesCmd(a *app) *cobra.Command {
	var opts resolveOpts
	cmd := &cobra.Command{
		Use:   "candidates TOKEN",
		Short: "List every action a token matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			t, filter, err := opts.selection(comp.Registry)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range action.Candidates(t, filter, args[0], comp.IgnoreCase) {
				fmt.Fprintf(out, "%s\t%s\t%s\n", c.Match.Kind, c.Keyword(), c.Action)
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables [NAME]",
		Short: "List candidate tables, or the actions of one table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range comp.Registry.Names() {
					t, _ := comp.Registry.Table(name)
					fmt.Fprintf(out, "%s\t%d\n", name, len(t))
				}
				return nil
			}
			t, ok := comp.Registry.Table(args[0])
			if !ok {
				return fmt.Errorf("%w: table %q", internalerr.ErrNotFound, args[0])
			}
			for _, act := range t {
				fmt.Fprintf(out, "%s\t%s\n", act, strings.Join(act.Keys(), " "))
			}
			return nil
		},
	}
}
