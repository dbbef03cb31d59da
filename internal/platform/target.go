package platform

import (
	"fmt"

	"github.com/zeebo/errs"
)

// UnsupportedPlatform classifies errors for keys with no release build.
var UnsupportedPlatform = errs.Class("unsupported platform")

// Target names a release build triple, e.g. "aarch64-apple-darwin".
type Target string

// String returns the target identifier.
func (t Target) String() string {
	return string(t)
}

// SupportedPlatform describes one entry of the release table.
type SupportedPlatform struct {
	Key    Key
	Target Target
	Label  string
}

// supported lists every platform a release artifact is published for, in the
// order it is shown to operators.
var supported = []SupportedPlatform{
	{Key{"darwin", "arm64"}, "aarch64-apple-darwin", "macOS Apple Silicon"},
	{Key{"darwin", "amd64"}, "x86_64-apple-darwin", "macOS Intel"},
	{Key{"linux", "arm64"}, "aarch64-unknown-linux-musl", "Linux ARM64"},
	{Key{"linux", "amd64"}, "x86_64-unknown-linux-gnu", "Linux x64"},
	{Key{"windows", "amd64"}, "x86_64-pc-windows-msvc", "Windows x64"},
}

var targets = func() map[Key]Target {
	m := make(map[Key]Target, len(supported))
	for _, s := range supported {
		m[s.Key] = s.Target
	}
	return m
}()

// Supported returns the release table in display order.
func Supported() []SupportedPlatform {
	out := make([]SupportedPlatform, len(supported))
	copy(out, supported)
	return out
}

// UnsupportedError reports a key that has no release build.
type UnsupportedError struct {
	Key Key
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no release build for %s", e.Key)
}

// Resolve maps a key to its release target. The key must match a table entry
// exactly; anything else yields an UnsupportedPlatform error wrapping an
// *UnsupportedError.
func Resolve(key Key) (Target, error) {
	target, ok := targets[key]
	if !ok {
		return "", UnsupportedPlatform.Wrap(&UnsupportedError{Key: key})
	}
	return target, nil
}
