// Package platform detects the operating system and CPU architecture the
// installer runs on and resolves them to a release target identifier.
//
// Detection uses runtime.GOOS/GOARCH for the key and gopsutil for Linux
// distribution details, which are informational only. Resolution is a direct
// lookup in a fixed table; there is no partial support for a platform.
package platform

import (
	"context"
	"strings"
)

// Linux distribution family constants.
const (
	FamilyDebian  = "debian"  // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"    // RHEL, CentOS, Rocky Linux
	FamilyFedora  = "fedora"  // Fedora
	FamilySUSE    = "suse"    // openSUSE, SLES
	FamilyArch    = "arch"    // Arch Linux, Manjaro
	FamilyAlpine  = "alpine"  // Alpine Linux
	FamilyUnknown = "unknown" // Unrecognized distributions
)

// Key identifies a platform by operating system and architecture, using Go's
// vocabulary ("linux", "darwin", "windows" / "amd64", "arm64").
type Key struct {
	OS   string
	Arch string
}

// NewKey builds a Key from raw identifiers, normalizing known aliases such as
// "win32" or "x64". Unknown identifiers are kept (lowercased) so they can be
// reported back to the operator.
func NewKey(os, arch string) Key {
	return Key{OS: NormalizeOS(os), Arch: NormalizeArch(arch)}
}

// String returns the key in "os-arch" form, e.g. "linux-amd64".
func (k Key) String() string {
	return k.OS + "-" + k.Arch
}

// IsWindows reports whether the key names a Windows platform.
func (k Key) IsWindows() bool {
	return k.OS == "windows"
}

// Info contains platform detection information.
type Info struct {
	OS       string // "linux", "darwin", "windows" (normalized)
	Arch     string // "amd64", "arm64" (normalized)
	ArchRaw  string // architecture as reported before normalization
	Platform string // distro ID (Linux only, e.g., "ubuntu")
	Family   string // canonical family (e.g., "debian")
	Version  string // distro version (Linux only, e.g., "22.04")
}

// Key returns the platform key for this detection result.
func (i *Info) Key() Key {
	return Key{OS: i.OS, Arch: i.Arch}
}

// WithOverride returns a copy of the info with OS and/or architecture replaced.
// Empty arguments keep the detected value. Distro details are dropped when the
// OS changes since they no longer describe the target.
func (i *Info) WithOverride(os, arch string) *Info {
	out := *i
	if os = strings.TrimSpace(os); os != "" {
		out.OS = NormalizeOS(os)
		if out.OS != i.OS {
			out.Platform, out.Family, out.Version = "", "", ""
		}
	}
	if arch = strings.TrimSpace(arch); arch != "" {
		out.ArchRaw = arch
		out.Arch = NormalizeArch(arch)
	}
	return &out
}

// Distro contains Linux distribution information.
type Distro struct {
	ID      string
	Family  string
	Version string
}

// GetDistro returns distro information if this is a Linux platform.
// Returns nil for non-Linux platforms or if distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != "linux" || i.Platform == "" {
		return nil
	}
	return &Distro{
		ID:      i.Platform,
		Family:  i.Family,
		Version: i.Version,
	}
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// IsAMD64 returns true if the architecture is amd64.
func (i *Info) IsAMD64() bool {
	return i.Arch == "amd64"
}

// IsARM64 returns true if the architecture is arm64.
func (i *Info) IsARM64() bool {
	return i.Arch == "arm64"
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
