package binary

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/monorka/tabletrace-install/internal/config"
	"github.com/monorka/tabletrace-install/internal/platform"
)

// Result is the terminal value of one install run.
type Result struct {
	Key        platform.Key
	Target     platform.Target
	Descriptor Descriptor
	// Path is the installed file; empty if the platform was not resolved.
	Path string
	// Size is the artifact size read back from disk.
	Size int64
	// Updated is true when a previous binary existed at Path.
	Updated  bool
	Duration time.Duration
	Err      error
	Kind     ErrorKind
}

// OK reports whether the install succeeded.
func (r *Result) OK() bool {
	return r.Err == nil
}

func (r *Result) fail(err error) *Result {
	r.Err = err
	r.Kind = Classify(err)
	return r
}

// Installer runs resolve, locate, download and finalize in order for one
// platform and stops at the first failure.
type Installer struct {
	binDir     string
	release    Release
	downloader *Downloader
	finalizer  *Finalizer
	observer   Observer
	logger     config.Logger
}

// InstallerConfig holds configuration for the installer
type InstallerConfig struct {
	// BinDir is the directory the binary is written to. Created if absent.
	BinDir string
	// Release describes the artifact to fetch.
	Release Release
	// Observer receives pipeline notifications; may be nil.
	Observer Observer
	// Logger receives diagnostics; may be nil.
	Logger config.Logger
	// HTTPClient overrides the default client; may be nil.
	HTTPClient *http.Client
	// UserAgent overrides DefaultUserAgent when set.
	UserAgent string
}

// NewInstaller creates a new installer
func NewInstaller(cfg InstallerConfig) (*Installer, error) {
	if cfg.BinDir == "" {
		return nil, fmt.Errorf("BinDir is required")
	}
	if cfg.Release.BinaryName == "" {
		return nil, fmt.Errorf("release binary name is required")
	}

	observer := cfg.Observer
	if observer == nil {
		observer = NopObserver{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = config.NopLogger()
	}

	opts := []DownloaderOption{
		WithTransferObserver(observer),
		WithLogger(logger),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.UserAgent))
	}

	return &Installer{
		binDir:     cfg.BinDir,
		release:    cfg.Release,
		downloader: NewDownloader(opts...),
		finalizer:  NewFinalizer(),
		observer:   observer,
		logger:     logger,
	}, nil
}

// BinaryPath returns the path the binary for key is installed to.
func (i *Installer) BinaryPath(key platform.Key) string {
	return filepath.Join(i.binDir, i.release.BinaryName+executableExt(key))
}

// IsInstalled reports whether a binary for key already exists.
func (i *Installer) IsInstalled(key platform.Key) bool {
	info, err := os.Stat(i.BinaryPath(key))
	return err == nil && info.Mode().IsRegular()
}

// Install provisions the binary for key. The returned Result is never nil;
// failures are reported through Result.Err rather than a second return value.
func (i *Installer) Install(ctx context.Context, key platform.Key) *Result {
	start := time.Now()
	res := &Result{Key: key}
	defer func() { res.Duration = time.Since(start) }()

	target, err := platform.Resolve(key)
	if err != nil {
		i.logger.Warn("platform not supported", "key", key.String())
		return res.fail(err)
	}

	desc := NewDescriptor(i.release, key, target)
	res.Target = target
	res.Descriptor = desc
	res.Path = filepath.Join(i.binDir, desc.LocalName())
	res.Updated = i.IsInstalled(key)

	i.observer.Resolved(key, desc)
	i.logger.Info("installing", "target", target.String(), "version", desc.Version, "path", res.Path)

	if err := os.MkdirAll(i.binDir, 0755); err != nil {
		return res.fail(IOError.Wrap(fmt.Errorf("create bin dir: %w", err)))
	}

	if _, err := i.downloader.Download(ctx, desc.URL(), res.Path); err != nil {
		i.logger.Error("download failed", "url", desc.URL(), "error", err)
		return res.fail(fmt.Errorf("download %s: %w", desc.ArtifactName(), err))
	}

	size, err := i.finalizer.Finalize(res.Path, key)
	res.Size = size
	if err != nil {
		return res.fail(fmt.Errorf("finalize %s: %w", res.Path, err))
	}

	i.logger.Info("installed", "path", res.Path, "bytes", size)
	return res
}
