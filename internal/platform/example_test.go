package platform_test

import (
	"fmt"

	"github.com/monorka/tabletrace-install/internal/platform"
)

func ExampleResolve() {
	target, err := platform.Resolve(platform.NewKey("darwin", "arm64"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(target)
	// Output: aarch64-apple-darwin
}

func ExampleResolve_unsupported() {
	_, err := platform.Resolve(platform.NewKey("freebsd", "x64"))
	fmt.Println(platform.UnsupportedPlatform.Has(err))
	// Output: true
}

func ExampleSupported() {
	for _, s := range platform.Supported() {
		fmt.Printf("%-14s %s\n", s.Key, s.Label)
	}
	// Output:
	// darwin-arm64   macOS Apple Silicon
	// darwin-amd64   macOS Intel
	// linux-arm64    Linux ARM64
	// linux-amd64    Linux x64
	// windows-amd64  Windows x64
}
