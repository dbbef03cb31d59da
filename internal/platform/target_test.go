package platform

import (
	"errors"
	"testing"
)

func TestResolve_Supported(t *testing.T) {
	tests := []struct {
		os, arch string
		want     Target
	}{
		{"darwin", "arm64", "aarch64-apple-darwin"},
		{"darwin", "x64", "x86_64-apple-darwin"},
		{"linux", "arm64", "aarch64-unknown-linux-musl"},
		{"linux", "x64", "x86_64-unknown-linux-gnu"},
		{"win32", "x64", "x86_64-pc-windows-msvc"},
	}

	for _, tt := range tests {
		t.Run(tt.os+"-"+tt.arch, func(t *testing.T) {
			got, err := Resolve(NewKey(tt.os, tt.arch))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	keys := []Key{
		NewKey("freebsd", "x64"),
		NewKey("win32", "arm64"),
		NewKey("win32", "ia32"),
		NewKey("linux", "arm"),
		NewKey("linux", "s390x"),
		NewKey("darwin", ""),
		{},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			target, err := Resolve(key)
			if err == nil {
				t.Fatalf("Resolve(%v) = %q, want error", key, target)
			}
			if target != "" {
				t.Errorf("target = %q, want empty", target)
			}
			if !UnsupportedPlatform.Has(err) {
				t.Errorf("error %v is not classified as UnsupportedPlatform", err)
			}

			var unsupported *UnsupportedError
			if !errors.As(err, &unsupported) {
				t.Fatalf("error %v does not wrap *UnsupportedError", err)
			}
			if unsupported.Key != key {
				t.Errorf("UnsupportedError.Key = %v, want %v", unsupported.Key, key)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	got := Supported()
	if len(got) != 5 {
		t.Fatalf("Supported() returned %d entries, want 5", len(got))
	}

	for _, s := range got {
		target, err := Resolve(s.Key)
		if err != nil {
			t.Errorf("Resolve(%v) error = %v", s.Key, err)
		}
		if target != s.Target {
			t.Errorf("Resolve(%v) = %q, table says %q", s.Key, target, s.Target)
		}
		if s.Label == "" {
			t.Errorf("entry %v has no label", s.Key)
		}
	}

	// Callers must not be able to mutate the table.
	got[0].Target = "mutated"
	if Supported()[0].Target == "mutated" {
		t.Error("Supported() exposes the internal table")
	}
}

func TestKey_String(t *testing.T) {
	if got := NewKey("win32", "x64").String(); got != "windows-amd64" {
		t.Errorf("String() = %q, want %q", got, "windows-amd64")
	}
	if !NewKey("win32", "x64").IsWindows() {
		t.Error("IsWindows() = false for win32")
	}
	if NewKey("linux", "x64").IsWindows() {
		t.Error("IsWindows() = true for linux")
	}
}
