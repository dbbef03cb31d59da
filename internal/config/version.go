package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// VersionSource supplies the release version to install.
type VersionSource interface {
	Version(ctx context.Context) (string, error)
}

// StaticVersion is a VersionSource with a fixed value.
type StaticVersion string

// Version returns v, or a ConfigError if it is empty.
func (v StaticVersion) Version(ctx context.Context) (string, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return "", ConfigError.New("empty version")
	}
	return s, nil
}

// PackageJSON reads the "version" key of an npm package manifest.
type PackageJSON struct {
	Path string
}

type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Version returns the manifest version with surrounding space removed.
func (p PackageJSON) Version(ctx context.Context) (string, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", ConfigError.Wrap(fmt.Errorf("read package manifest: %w", err))
	}

	var pkg packageManifest
	if err := json.UnmarshalContext(ctx, data, &pkg); err != nil {
		return "", ConfigError.Wrap(fmt.Errorf("decode %s: %w", p.Path, err))
	}

	v := strings.TrimSpace(pkg.Version)
	if v == "" {
		return "", ConfigError.New("%s has no version", p.Path)
	}
	return v, nil
}
