package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ekisa-team/sdkpath/applesdk"
	"github.com/ekisa-team/sdkpath/internal/config"
	"github.com/ekisa-team/sdkpath/internal/envvar"
	"github.com/ekisa-team/sdkpath/internal/registry"
	"github.com/ekisa-team/sdkpath/internal/xfs"
	"github.com/ekisa-team/sdkpath/sdkpath"
)

var errNoPath = errors.New("no path given and " + envvar.SdkRoot + " is not set")

func (a *app) newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform <platform>",
		Short: "Resolve the first SDK discovered for a canonical platform (e.g. MacOSX)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform := applesdk.Platform(args[0])
			if !platform.IsValid() {
				return fmt.Errorf("unknown platform %q (known: %v)", args[0], applesdk.Platforms())
			}

			return a.printResolved(cmd.OutOrStdout(), func(r registry.Resolver) (sdkpath.SdkPath, error) {
				return r.FromPlatform(platform)
			})
		},
	}
}

func (a *app) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path [path]",
		Short: "Validate an SDK bundle path (defaults to $" + envvar.SdkRoot + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := os.Getenv(envvar.SdkRoot)
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errNoPath
			}

			return a.printResolved(cmd.OutOrStdout(), func(r registry.Resolver) (sdkpath.SdkPath, error) {
				return r.FromPath(xfs.ExpandTilde(path))
			})
		},
	}
}

func (a *app) newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <name>",
		Short: "Resolve an SDK from a platform name or alias (e.g. macosx, ios, visionos)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printResolved(cmd.OutOrStdout(), func(r registry.Resolver) (sdkpath.SdkPath, error) {
				return r.FromName(args[0])
			})
		},
	}
}

func (a *app) newXcrunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xcrun [sdk]",
		Short: "Ask xcrun for an SDK path and validate it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sdk string
			if len(args) == 1 {
				sdk = args[0]
			}

			return a.printResolved(cmd.OutOrStdout(), func(r registry.Resolver) (sdkpath.SdkPath, error) {
				return r.FromXcrun(cmd.Context(), sdk)
			})
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [platform]",
		Short: "List every discovered SDK, optionally for one platform name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []applesdk.Option
			if dirs := a.currentConfig().DeveloperDirs(); dirs != nil {
				opts = append(opts, applesdk.WithDeveloperDirs(dirs...))
			}
			search := applesdk.NewSearch(opts...)

			if len(args) == 1 {
				platform, err := applesdk.ParsePlatform(args[0])
				if err != nil {
					return err
				}
				search = search.Platform(platform)
			}

			sdks, err := search.Search()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PLATFORM\tNAME\tVERSION\tPATH")
			for _, sdk := range sdks {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sdk.Platform(), sdk.CanonicalName(), sdk.Version(), sdk.Path())
			}
			return tw.Flush()
		},
	}
}

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve every SDK declared in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.requireConfig()
			if err != nil {
				return err
			}

			manager := registry.NewManager()
			if err := manager.LoadFromConfig(cmd.Context(), cfg); err != nil {
				return err
			}

			return printRegistry(cmd.OutOrStdout(), manager.Registry())
		},
	}
}

func (a *app) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Resolve the config SDKs and re-resolve whenever the config changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.requireConfig(); err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			manager := registry.NewManager()

			watcher, err := config.NewWatcher(a.configPath, "", onConfigReload(ctx, manager, out))
			if err != nil {
				return fmt.Errorf("failed to create config watcher: %w", err)
			}
			defer watcher.Close()

			if err := manager.LoadFromConfig(ctx, watcher.Snapshot()); err != nil {
				return err
			}
			if err := printRegistry(out, manager.Registry()); err != nil {
				return err
			}

			slog.Info("Watching config", "config", a.configPath)
			<-ctx.Done()

			return nil
		},
	}
}

// onConfigReload re-resolves the SDKs after each config reload and prints them.
// Failed reloads are already logged by the watcher and leave the registry as is.
func onConfigReload(ctx context.Context, manager *registry.Manager, out io.Writer) func(*config.Config, error) {
	return func(cfg *config.Config, err error) {
		if err != nil {
			return
		}

		if err := manager.LoadFromConfig(ctx, cfg); err != nil {
			slog.Error("Failed to resolve SDKs from config", "error", err)
			return
		}

		if err := printRegistry(out, manager.Registry()); err != nil {
			slog.Error("Failed to print SDKs", "error", err)
		}
	}
}

// printResolved resolves one SDK path with a config-aware resolver and prints it.
func (a *app) printResolved(w io.Writer, resolve func(registry.Resolver) (sdkpath.SdkPath, error)) error {
	r, err := a.resolver()
	if err != nil {
		return err
	}

	path, err := resolve(r)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, path.Path())
	return err
}

func printRegistry(w io.Writer, reg *registry.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, entry := range reg.List() {
		fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Path.Path())
	}
	return tw.Flush()
}
