package testutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/monorka/tabletrace-install/internal/testutil"
)

func TestSetupTestEnv(t *testing.T) {
	t.Setenv("TABLETRACE_INSTALL_VERSION", "9.9.9")

	testutil.SetupTestEnv(t)

	for _, k := range testutil.InstallEnvVars {
		if v := os.Getenv(k); v != "" {
			t.Errorf("%s = %q, want empty", k, v)
		}
	}
}

func TestPackageDir(t *testing.T) {
	dir := testutil.PackageDir(t, "0.3.1")

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatalf("package.json not written: %v", err)
	}
	if !strings.Contains(string(data), `"version": "0.3.1"`) {
		t.Errorf("package.json = %s", data)
	}
}
