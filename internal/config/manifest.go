package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/monorka/tabletrace-install/internal/platform"
)

// ManifestFile is the optional Lua manifest looked up in the package directory.
const ManifestFile = "tabletrace.lua"

// Manifest holds the values a manifest sets. Empty fields leave the
// lower-precedence value in place.
type Manifest struct {
	Repository  string
	Version     string
	Host        string
	Binary      string
	AssetPrefix string
	Crate       string
	BinDir      string
	Examples    []string
}

// Parser evaluates manifests with the platform table injected.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a new manifest parser with the given platform detector.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseFile reads and evaluates the manifest at path. A missing file is not
// an error and returns a nil manifest.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, ConfigError.Wrap(fmt.Errorf("read manifest: %w", err))
	}
	return p.ParseString(ctx, string(data))
}

// ParseString evaluates manifest source held in memory.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Manifest, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, ConfigError.Wrap(fmt.Errorf("platform detection failed: %w", err))
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, ConfigError.Wrap(fmt.Errorf("inject platform table: %w", err))
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, ConfigError.Wrap(&ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		})
	}

	m, err := extractManifest(L)
	if err != nil {
		return nil, ConfigError.Wrap(err)
	}
	return m, nil
}

// extractManifest reads the global "install" table.
func extractManifest(L *lua.LState) (*Manifest, error) {
	v := L.GetGlobal("install")
	if v.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'install' table",
			Detail:  fmt.Sprintf("expected table, got %s", v.Type()),
		}
	}
	table := v.(*lua.LTable)

	m := &Manifest{}
	fields := []struct {
		key string
		dst *string
	}{
		{"repository", &m.Repository},
		{"version", &m.Version},
		{"host", &m.Host},
		{"binary", &m.Binary},
		{"asset_prefix", &m.AssetPrefix},
		{"crate", &m.Crate},
		{"bin_dir", &m.BinDir},
	}
	for _, f := range fields {
		s, err := optionalString(table, f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = s
	}

	switch ex := table.RawGetString("examples"); ex.Type() {
	case lua.LTNil:
	case lua.LTTable:
		m.Examples = extractStrings(ex.(*lua.LTable))
	default:
		return nil, &ParseError{
			Message: "invalid 'examples'",
			Detail:  fmt.Sprintf("expected table, got %s", ex.Type()),
		}
	}

	return m, nil
}

// optionalString returns the string at key, "" when absent. Numbers are
// formatted the way Lua prints them.
func optionalString(table *lua.LTable, key string) (string, error) {
	v := table.RawGetString(key)
	switch v.Type() {
	case lua.LTNil:
		return "", nil
	case lua.LTString, lua.LTNumber:
		return v.String(), nil
	default:
		return "", &ParseError{
			Message: fmt.Sprintf("invalid '%s'", key),
			Detail:  fmt.Sprintf("expected string, got %s", v.Type()),
		}
	}
}

// extractStrings collects the string elements of an array table. Nil holes
// from platform conditionals (platform.is_linux and "x" or nil) are skipped.
func extractStrings(table *lua.LTable) []string {
	var out []string
	table.ForEach(func(_, value lua.LValue) {
		if value.Type() == lua.LTString {
			out = append(out, value.String())
		}
	})
	return out
}
