// Package config assembles the install settings.
//
// # Layers
//
// Settings are built from four layers, lowest precedence first:
//
//  1. Defaults: the upstream GitHub release of monorka/tabletrace-cli,
//     installed into <package-dir>/bin.
//  2. The optional Lua manifest tabletrace.lua in the package directory.
//  3. Environment variables prefixed with TABLETRACE_INSTALL_.
//  4. Command-line overrides.
//
// When no layer sets a version, the "version" key of package.json is used.
//
// # Manifest
//
// The manifest runs in a sandboxed gopher-lua VM: only the base, string,
// table and math libraries are available, and nothing can be loaded from
// disk. A read-only global "platform" table describes the install target.
// The manifest must assign a global "install" table:
//
//	install = {
//	    repository = "monorka/tabletrace-cli",
//	    version    = "0.3.1",
//	    bin_dir    = platform.is_windows and "bin-win" or "bin",
//	    examples   = { "tabletrace --help" },
//	}
//
// # Logging
//
// Logger is the structured logging interface shared by the other packages.
// NopLogger is the default; NewLogger returns a zap-backed implementation.
package config
