package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
	"github.com/cognicore/polyglot/pkg/polyglot/langmap"
)

func newLookupCmd(a *app) *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "lookup KEY...",
		Short: "Print localized texts for keys",
		Long: `Print the text for each key in the current language. Keys missing in
that language are taken from the fallback languages unless --exact is
given.`,
		Example: `  polyglot lookup --lang de mon wed cest
  polyglot lookup --exact --lang fr wet`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			comp, cleanup, err := a.buildComponents(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat := comp.Catalog
			if !exact {
				if err := cat.Preload(ctx, args); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			missing := 0
			for _, key := range args {
				var (
					val string
					ok  bool
				)
				if exact {
					val, ok, err = cat.Lookup(ctx, cat.Language(), key)
				} else {
					val, ok, err = cat.Value(ctx, key)
				}
				if err != nil {
					return err
				}
				if !ok {
					missing++
					fmt.Fprintf(out, "%s\t<missing>\n", key)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", key, val)
			}
			if missing > 0 {
				return fmt.Errorf("%w: %d of %d keys", internalerr.ErrNotFound, missing, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "do not use fallback languages")
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:   "format KEY [ARG...]",
		Short: "Fill a localized message pattern with arguments",
		Long: `Look up the pattern stored under KEY and replace its {N} placeholders
with the arguments. Integers and true/false are passed typed so that plural
and choice forms such as {0s} or {1yes?no} apply.`,
		Example: `  polyglot format deleted 3
  polyglot format --lang de deleted 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			vals := make([]any, 0, len(args)-1)
			for _, s := range args[1:] {
				vals = append(vals, parseArg(s))
			}
			fmt.Fprintln(cmd.OutOrStdout(), comp.Catalog.Format(cmd.Context(), args[0], def, vals...))
			return nil
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "pattern used when KEY is missing")
	return cmd
}

// parseArg types a command-line argument for FormatMessage.
func parseArg(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return s
}

func newPutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put KEY VALUE",
		Short: "Store a text for a key in the current language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			cat := comp.Catalog
			return cat.Put(cmd.Context(), cat.Language(), args[0], args[1])
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY...",
		Short: "Remove keys from the current language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, cleanup, err := a.buildComponents(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			cat := comp.Catalog
			for _, key := range args {
				if err := cat.Delete(cmd.Context(), cat.Language(), key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [LANG]",
		Short: "List stored languages, or the entries of one language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			comp, cleanup, err := a.buildComponents(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				langs, err := comp.Store.Languages(ctx)
				if err != nil {
					return err
				}
				for _, l := range langs {
					fmt.Fprintf(out, "%s\t%s\n", l, comp.Catalog.LanguageName(ctx, l, false))
				}
				return nil
			}

			lang, err := langmap.NormalizeLanguage(args[0])
			if err != nil {
				return err
			}
			entries, err := comp.Store.Entries(ctx, lang)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%s\n", e.Key, e.Value)
			}
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var (
		after string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the change journal of the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			comp, cleanup, err := a.buildComponents(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			changes, err := comp.Store.Changes(ctx, after, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range changes {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s/%s\t%s\n",
					c.ID, c.At.UTC().Format(time.RFC3339), c.Op, c.Lang, c.Key, c.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&after, "after", "", "only show changes after this ID")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of changes")
	return cmd
}
