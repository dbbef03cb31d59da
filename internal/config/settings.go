package config

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/monorka/tabletrace-install/internal/platform"
)

// Built-in defaults.
const (
	DefaultHost        = "https://github.com"
	DefaultRepository  = "monorka/tabletrace-cli"
	DefaultBinaryName  = "tabletrace-bin"
	DefaultAssetPrefix = "tabletrace"
	DefaultCrate       = "tabletrace"
	DefaultBinDirName  = "bin"
)

// DefaultExamples are shown after a successful install.
var DefaultExamples = []string{
	"tabletrace watch --preset postgres",
	"tabletrace watch --preset supabase",
	"tabletrace --help",
}

// Settings is the fully layered install configuration.
type Settings struct {
	PackageDir  string
	BinDir      string
	Host        string
	Repository  string
	Version     string
	BinaryName  string
	AssetPrefix string
	Crate       string
	Examples    []string
	OS          string
	Arch        string
	LogLevel    string
}

// Overrides are the command-line values; empty fields are unset.
type Overrides struct {
	BinDir   string
	Version  string
	OS       string
	Arch     string
	LogLevel string
}

// Defaults returns the built-in settings for a package rooted at packageDir.
func Defaults(packageDir string) *Settings {
	return &Settings{
		PackageDir:  packageDir,
		BinDir:      filepath.Join(packageDir, DefaultBinDirName),
		Host:        DefaultHost,
		Repository:  DefaultRepository,
		BinaryName:  DefaultBinaryName,
		AssetPrefix: DefaultAssetPrefix,
		Crate:       DefaultCrate,
		Examples:    append([]string(nil), DefaultExamples...),
	}
}

// DefaultSourceURL is the upstream repository URL. It is known even when the
// settings could not be assembled.
func DefaultSourceURL() string {
	return DefaultHost + "/" + DefaultRepository
}

// BaseURL returns Host as an absolute URL without a trailing slash. A bare
// host name gets an https scheme.
func (s *Settings) BaseURL() string {
	h := strings.TrimRight(strings.TrimSpace(s.Host), "/")
	if !strings.Contains(h, "://") {
		h = "https://" + h
	}
	return h
}

// ApplyManifest layers m over s. A relative bin_dir is taken relative to the
// package directory.
func (s *Settings) ApplyManifest(m *Manifest) {
	if m == nil {
		return
	}
	setIf(&s.Repository, m.Repository)
	setIf(&s.Version, m.Version)
	setIf(&s.Host, m.Host)
	setIf(&s.BinaryName, m.Binary)
	setIf(&s.AssetPrefix, m.AssetPrefix)
	setIf(&s.Crate, m.Crate)
	if m.BinDir != "" {
		if filepath.IsAbs(m.BinDir) {
			s.BinDir = m.BinDir
		} else {
			s.BinDir = filepath.Join(s.PackageDir, m.BinDir)
		}
	}
	if len(m.Examples) > 0 {
		s.Examples = append([]string(nil), m.Examples...)
	}
}

// ApplyEnv layers environment overrides over s.
func (s *Settings) ApplyEnv(e Env) {
	setIf(&s.Host, e.Host)
	setIf(&s.Repository, e.Repository)
	setIf(&s.Version, e.Version)
	setIf(&s.BinDir, e.BinDir)
	setIf(&s.OS, e.OS)
	setIf(&s.Arch, e.Arch)
	setIf(&s.LogLevel, e.LogLevel)
}

// ApplyOverrides layers command-line values over s.
func (s *Settings) ApplyOverrides(o Overrides) {
	setIf(&s.BinDir, o.BinDir)
	setIf(&s.Version, o.Version)
	setIf(&s.OS, o.OS)
	setIf(&s.Arch, o.Arch)
	setIf(&s.LogLevel, o.LogLevel)
}

// Validate checks that every value needed to build a download URL is set.
func (s *Settings) Validate() error {
	required := []struct {
		name, value string
	}{
		{"host", s.Host},
		{"repository", s.Repository},
		{"version", s.Version},
		{"binary name", s.BinaryName},
		{"asset prefix", s.AssetPrefix},
		{"bin dir", s.BinDir},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return ConfigError.New("%s is not set", r.name)
		}
	}
	if strings.ContainsAny(s.BinaryName, `/\`) {
		return ConfigError.New("binary name %q must not contain a path separator", s.BinaryName)
	}
	return nil
}

func setIf(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Loader assembles Settings from all layers.
type Loader struct {
	Detector platform.Detector
	Logger   Logger
	// Env replaces LoadEnv when set.
	Env func() (Env, error)
	// Version is consulted when no layer sets a version. Defaults to
	// package.json in the package directory.
	Version VersionSource
}

// Load layers defaults, the manifest in packageDir, the environment and o, in
// increasing precedence, and fills in the version from package.json when no
// layer set one. It also returns the platform the install targets, with any
// OS or architecture override applied.
func (l *Loader) Load(ctx context.Context, packageDir string, o Overrides) (*Settings, *platform.Info, error) {
	logger := l.Logger
	if logger == nil {
		logger = NopLogger()
	}
	loadEnv := l.Env
	if loadEnv == nil {
		loadEnv = LoadEnv
	}
	detector := l.Detector
	if detector == nil {
		detector = platform.NewDetector()
	}

	env, err := loadEnv()
	if err != nil {
		return nil, nil, err
	}

	detected, err := detector.Detect(ctx)
	if err != nil {
		return nil, nil, ConfigError.Wrap(err)
	}
	info := detected.WithOverride(firstNonEmpty(o.OS, env.OS), firstNonEmpty(o.Arch, env.Arch))
	logger.Debug("platform", "os", info.OS, "arch", info.Arch, "distro", info.Platform)

	s := Defaults(packageDir)

	manifestPath := filepath.Join(packageDir, ManifestFile)
	m, err := NewParser(&platform.StaticDetector{Info: info}).ParseFile(ctx, manifestPath)
	if err != nil {
		return nil, nil, err
	}
	if m != nil {
		logger.Debug("manifest loaded", "path", manifestPath)
	}
	s.ApplyManifest(m)
	s.ApplyEnv(env)
	s.ApplyOverrides(o)

	if s.Version == "" {
		var src VersionSource = PackageJSON{Path: filepath.Join(packageDir, "package.json")}
		if l.Version != nil {
			src = l.Version
		}
		v, err := src.Version(ctx)
		if err != nil {
			return nil, nil, err
		}
		s.Version = v
	}

	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	return s, info, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
