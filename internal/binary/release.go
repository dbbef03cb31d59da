package binary

import (
	"fmt"
	"strings"

	"github.com/monorka/tabletrace-install/internal/platform"
)

// Release identifies what to download, independent of the platform.
type Release struct {
	// BaseURL is the release host, e.g. "https://github.com".
	BaseURL string
	// Repository is "owner/name".
	Repository string
	// Version is interpolated verbatim after a "v" tag prefix.
	Version string
	// AssetPrefix starts every artifact name, e.g. "tabletrace".
	AssetPrefix string
	// BinaryName is the local file name without extension.
	BinaryName string
}

// Descriptor fully determines the download URL and local binary name for one
// platform.
type Descriptor struct {
	Release
	Target    platform.Target
	Extension string
}

// NewDescriptor builds the descriptor for a resolved target. It cannot fail;
// malformed inputs surface as HTTP errors when the URL is fetched.
func NewDescriptor(rel Release, key platform.Key, target platform.Target) Descriptor {
	return Descriptor{
		Release:   rel,
		Target:    target,
		Extension: executableExt(key),
	}
}

// ArtifactName returns the release asset name, e.g. "tabletrace-x86_64-unknown-linux-gnu".
func (d Descriptor) ArtifactName() string {
	return fmt.Sprintf("%s-%s%s", d.AssetPrefix, d.Target, d.Extension)
}

// URL returns the download URL of the artifact.
// Pattern: {base}/{repository}/releases/download/v{version}/{asset}-{target}{ext}
func (d Descriptor) URL() string {
	return fmt.Sprintf("%s/releases/download/v%s/%s", d.SourceURL(), d.Version, d.ArtifactName())
}

// SourceURL returns the repository URL, used for the build-from-source fallback.
func (d Descriptor) SourceURL() string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(d.BaseURL, "/"), strings.Trim(d.Repository, "/"))
}

// LocalName returns the installed file name, with ".exe" on Windows.
func (d Descriptor) LocalName() string {
	return d.BinaryName + d.Extension
}

func executableExt(key platform.Key) string {
	if key.IsWindows() {
		return ".exe"
	}
	return ""
}
