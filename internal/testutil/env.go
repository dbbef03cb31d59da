// Package testutil provides helpers for running installer tests in isolation.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// InstallEnvVars are the environment variables the installer reads.
var InstallEnvVars = []string{
	"TABLETRACE_INSTALL_HOST",
	"TABLETRACE_INSTALL_REPOSITORY",
	"TABLETRACE_INSTALL_VERSION",
	"TABLETRACE_INSTALL_BIN_DIR",
	"TABLETRACE_INSTALL_OS",
	"TABLETRACE_INSTALL_ARCH",
	"TABLETRACE_INSTALL_LOG_LEVEL",
	"COLUMNS",
}

// SetupTestEnv blanks every installer variable for the duration of the test
// so a developer's shell cannot change the outcome.
func SetupTestEnv(t *testing.T) {
	t.Helper()
	for _, k := range InstallEnvVars {
		t.Setenv(k, "")
	}
}

// PackageDir creates an npm package root whose package.json carries version
// and returns its path. The directory is removed with the test.
func PackageDir(t *testing.T, version string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "tabletrace")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("failed to create package dir: %v", err)
	}

	manifest := fmt.Sprintf(`{"name": "tabletrace", "version": %q}`, version)
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("failed to write package.json: %v", err)
	}
	return dir
}
