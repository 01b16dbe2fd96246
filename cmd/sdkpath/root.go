package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ekisa-team/sdkpath/internal/config"
	"github.com/ekisa-team/sdkpath/internal/env"
	"github.com/ekisa-team/sdkpath/internal/logger"
	"github.com/ekisa-team/sdkpath/internal/registry"
	"github.com/ekisa-team/sdkpath/internal/xfs"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	configPath string
	logFile    string
	verbose    bool

	// cfg is nil when no config file exists and none was requested explicitly.
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sdkpath",
		Short: "Locate installed Apple platform SDKs",
		Long: `sdkpath resolves the filesystem path of an installed Apple SDK bundle
from a platform, a platform name, a raw path, or xcrun, and validates it.

Examples:
  sdkpath platform MacOSX          First macOS SDK found by discovery
  sdkpath name ios                 Same, from a platform name or alias
  sdkpath path ~/sdks/MacOSX.sdk   Validate a bundle path (defaults to $SDKROOT)
  sdkpath xcrun iphonesimulator    Ask xcrun
  sdkpath resolve                  Resolve every SDK declared in the config`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is "+config.DefaultConfigFile()+")")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "also write logs to this rotating file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newPlatformCmd(),
		a.newPathCmd(),
		a.newNameCmd(),
		a.newXcrunCmd(),
		a.newListCmd(),
		a.newResolveCmd(),
		a.newWatchCmd(),
	)

	return root
}

// setup loads the config, if any, and installs the default logger.
func (a *app) setup(cmd *cobra.Command) error {
	explicit := a.configPath != ""
	if !explicit {
		a.configPath = config.DefaultConfigFile()
	}

	if explicit || xfs.Exists(a.configPath) {
		cfg, err := config.LoadAndValidate(a.configPath, "")
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	opts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
	if a.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	switch {
	case a.logFile != "":
		opts = append(opts, logger.WithLogToFile(true), logger.WithLogFile(xfs.ExpandTilde(a.logFile)))
	case a.cfg != nil && a.cfg.Log.ToFile:
		opts = append(opts, logger.WithLogToFile(true), logger.WithLogFile(xfs.ExpandTilde(a.cfg.Log.File)))
	}

	slog.SetDefault(logger.New(env.FromEnv(), opts...))
	slog.Debug("Config loaded", "config", a.configPath, "found", a.cfg != nil)

	return nil
}

// currentConfig returns the loaded config, or an empty one when none was found.
func (a *app) currentConfig() *config.Config {
	if a.cfg != nil {
		return a.cfg
	}
	return &config.Config{Version: "1"}
}

// requireConfig returns the loaded config or an error naming the expected file.
func (a *app) requireConfig() (*config.Config, error) {
	if a.cfg == nil {
		return nil, fmt.Errorf("no config file found at %s", a.configPath)
	}
	return a.cfg, nil
}

// resolver builds a resolver from the config.
func (a *app) resolver() (registry.Resolver, error) {
	return registry.ResolverFromConfig(a.currentConfig())
}
