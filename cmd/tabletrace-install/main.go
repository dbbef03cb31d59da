// Command tabletrace-install downloads the prebuilt TableTrace binary for the
// current platform. It runs as the npm postinstall step of the tabletrace
// package and writes all output to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/monorka/tabletrace-install/internal/binary"
	"github.com/monorka/tabletrace-install/internal/config"
	"github.com/monorka/tabletrace-install/internal/report"
)

// Version will be set at build time via -ldflags
var Version = "dev"

// errInstallFailed is returned after the reporter has already explained the
// failure, so main only sets the exit code.
var errInstallFailed = errors.New("install failed")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInstallFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		if config.ConfigError.Has(err) {
			report.New(stderr, report.Options{}).SourceFallback(config.DefaultSourceURL())
		}
		return 1
	}
	return 0
}

func userAgent() string {
	return binary.DefaultUserAgent + "/" + Version
}

type options struct {
	packageDir string
	binDir     string
	version    string
	os         string
	arch       string
	verbose    bool
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tabletrace-install",
		Short: "Install the prebuilt TableTrace CLI binary",
		Long: `Downloads the TableTrace CLI release build for this platform from GitHub
and places it in the package's bin directory.

Settings are read from tabletrace.lua in the package directory, then from
TABLETRACE_INSTALL_* environment variables, then from flags.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), opts, stderr)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.packageDir, "package-dir", "", "npm package root (default: current directory)")
	f.StringVar(&opts.binDir, "bin-dir", "", "directory to install the binary into (default: <package-dir>/bin)")
	f.StringVar(&opts.version, "version", "", "release version to install (default: package.json version)")
	f.StringVar(&opts.os, "os", "", "override the detected operating system")
	f.StringVar(&opts.arch, "arch", "", "override the detected architecture")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	return cmd
}

func runInstall(ctx context.Context, opts *options, stderr io.Writer) error {
	packageDir := opts.packageDir
	if packageDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve package dir: %w", err)
		}
		packageDir = wd
	}

	overrides := config.Overrides{
		BinDir:  opts.binDir,
		Version: opts.version,
		OS:      opts.os,
		Arch:    opts.arch,
	}
	if opts.verbose {
		overrides.LogLevel = "debug"
	}

	logger, err := config.NewLogger(overrides.LogLevel, stderr)
	if err != nil {
		return err
	}
	logger.Debug("starting", "installer", Version, "package_dir", packageDir)

	settings, info, err := (&config.Loader{Logger: logger}).Load(ctx, packageDir, overrides)
	if err != nil {
		return err
	}
	if settings.LogLevel != overrides.LogLevel {
		if logger, err = config.NewLogger(settings.LogLevel, stderr); err != nil {
			return err
		}
	}

	rep := report.New(stderr, report.Options{
		Examples: settings.Examples,
		Crate:    settings.Crate,
	})

	inst, err := binary.NewInstaller(binary.InstallerConfig{
		BinDir: settings.BinDir,
		Release: binary.Release{
			BaseURL:     settings.BaseURL(),
			Repository:  settings.Repository,
			Version:     settings.Version,
			AssetPrefix: settings.AssetPrefix,
			BinaryName:  settings.BinaryName,
		},
		Observer:  rep,
		Logger:    logger,
		UserAgent: userAgent(),
	})
	if err != nil {
		return err
	}

	key := info.Key()
	rep.Header(inst.IsInstalled(key))

	res := inst.Install(ctx, key)
	rep.Outcome(res)
	if !res.OK() {
		logger.Debug("install failed", "kind", res.Kind.String(), "duration", res.Duration)
		return errInstallFailed
	}
	logger.Debug("install finished", "duration", res.Duration)
	return nil
}
