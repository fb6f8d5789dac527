package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/polyglot/pkg/polyglot/config"
	"github.com/cognicore/polyglot/pkg/polyglot/internalerr"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch [CATALOG...]",
		Short: "Reload catalog files into the store when they change",
		Long: `Watch catalog files and write changed entries into the store until
interrupted. Without arguments the catalogs named in the config file are
watched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runWatch(ctx, cmd, args, debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", config.DefaultDebounce, "quiet period before a changed file is reloaded")
	return cmd
}

// runWatch blocks until ctx is done.
func (a *app) runWatch(ctx context.Context, cmd *cobra.Command, paths []string, debounce time.Duration) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		paths = cfg.Catalogs
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no catalog files to watch", internalerr.ErrInvalidInput)
	}

	comp, cleanup, err := a.buildComponents(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	w, err := config.NewCatalogWatcher(comp.Catalog, paths, a.logger)
	if err != nil {
		return err
	}
	w.SetDebounce(debounce)
	out := cmd.OutOrStdout()
	w.OnReload(func(path string, changed int, err error) {
		if err != nil {
			fmt.Fprintf(out, "%s\terror: %v\n", path, err)
			return
		}
		fmt.Fprintf(out, "%s\t%d changed\n", path, changed)
	})

	w.Start(ctx)
	a.logger.Info("watching catalogs", zap.Strings("paths", paths))
	<-ctx.Done()
	return w.Stop()
}
