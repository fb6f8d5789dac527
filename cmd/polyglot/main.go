package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cognicore/polyglot/pkg/polyglot/config"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	v       *viper.Viper
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "polyglot",
		Short: "Multilingual keyword resolution and localized text lookup",
		Long: `polyglot resolves user-typed keywords and their abbreviations
("Mo", "täg", "rot") against candidate tables in several languages and
serves localized texts from a translation store through a small cache.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if a.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.String("lang", "", "language (or set POLYGLOT_LANGUAGE)")
	pf.String("store", "", "store driver: memory or sqlite (or set POLYGLOT_STORE_DRIVER)")
	pf.String("db", "", "sqlite database path (or set POLYGLOT_STORE_PATH)")
	pf.Bool("case-sensitive", false, "match keywords case sensitively")

	_ = a.v.BindPFlag("language", pf.Lookup("lang"))
	_ = a.v.BindPFlag("store.driver", pf.Lookup("store"))
	_ = a.v.BindPFlag("store.path", pf.Lookup("db"))
	_ = a.v.BindPFlag("case_sensitive", pf.Lookup("case-sensitive"))
	a.v.SetEnvPrefix("POLYGLOT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newResolveCmd(a),
		newCandidatesCmd(a),
		newLookupCmd(a),
		newFormatCmd(a),
		newPutCmd(a),
		newDeleteCmd(a),
		newHistoryCmd(a),
		newListCmd(a),
		newDurationCmd(a),
		newColorCmd(a),
		newTablesCmd(a),
		newWatchCmd(a),
	)
	return root
}

// loadConfig reads the config file, if any, and applies flag and
// environment overrides.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if a.v.IsSet("language") {
		cfg.Language = a.v.GetString("language")
	}
	if a.v.IsSet("store.driver") {
		cfg.Store.Driver = a.v.GetString("store.driver")
	}
	if a.v.IsSet("store.path") {
		cfg.Store.Path = a.v.GetString("store.path")
		if !a.v.IsSet("store.driver") {
			cfg.Store.Driver = config.DriverSQLite
		}
	}
	if a.v.IsSet("case_sensitive") {
		ignore := !a.v.GetBool("case_sensitive")
		cfg.IgnoreCase = &ignore
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildComponents loads the configuration and builds all components. The
// cleanup function closes the store.
func (a *app) buildComponents(ctx context.Context) (*config.Components, func(), error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	loader := config.Loader{Config: cfg, Logger: a.logger}
	comp, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("components ready",
		zap.String("lang", comp.Catalog.Language()),
		zap.String("store", cfg.Store.Driver),
		zap.Strings("tables", comp.Registry.Names()))

	cleanup := func() {
		if err := comp.Close(); err != nil {
			a.logger.Warn("close store", zap.Error(err))
		}
	}
	return comp, cleanup, nil
}
