// Package report renders install progress and outcomes for the operator.
//
// Output is line oriented: every notification ends with a newline, so it
// stays readable when a package manager captures or interleaves stderr.
package report

import (
	"fmt"
	"io"

	"github.com/monorka/tabletrace-install/internal/binary"
	"github.com/monorka/tabletrace-install/internal/platform"
)

// Options configure a Reporter.
type Options struct {
	// Examples are shown after a successful install.
	Examples []string
	// Crate is suggested for `cargo install` when no release build exists.
	Crate string
	// Width overrides terminal width detection; 0 detects.
	Width int
}

// Reporter writes human-readable install output. It implements
// binary.Observer.
type Reporter struct {
	w        io.Writer
	styles   styles
	examples []string
	crate    string
	width    int
}

var _ binary.Observer = (*Reporter)(nil)

// New creates a Reporter writing to w, normally os.Stderr.
func New(w io.Writer, opts Options) *Reporter {
	width := opts.Width
	if width <= 0 {
		width = terminalWidth(w)
	}
	return &Reporter{
		w:        w,
		styles:   newStyles(w),
		examples: opts.Examples,
		crate:    opts.Crate,
		width:    width,
	}
}

func (r *Reporter) println(a ...interface{}) {
	fmt.Fprintln(r.w, a...)
}

func (r *Reporter) printf(format string, a ...interface{}) {
	fmt.Fprintf(r.w, format, a...)
}

// Header announces the start of an install or update.
func (r *Reporter) Header(updating bool) {
	title := "Installing TableTrace CLI"
	if updating {
		title = "Updating TableTrace CLI"
	}
	r.println()
	r.println(r.styles.title.Render(title))
	r.println()
}

// Resolved prints the platform and version being installed.
func (r *Reporter) Resolved(key platform.Key, d binary.Descriptor) {
	r.printf("%s %s %s\n", r.styles.label.Render("Platform:"), key, r.styles.detail.Render("("+d.Target.String()+")"))
	r.printf("%s  v%s\n", r.styles.label.Render("Version:"), d.Version)
	r.println()
}

// DownloadStarted prints the start of the transfer.
func (r *Reporter) DownloadStarted(url string) {
	r.println(r.styles.label.Render("Downloading binary..."))
	r.println(r.styles.detail.Render("   " + url))
}

// RedirectFollowed prints one line per followed redirect.
func (r *Reporter) RedirectFollowed(location string, depth int) {
	r.println(r.styles.detail.Render(fmt.Sprintf("   ↳ Following redirect (%d/%d)...", depth, binary.MaxRedirects)))
}

// Progress prints a progress line.
func (r *Reporter) Progress(p binary.Progress) {
	if p.Known() {
		r.printf("   ↳ Progress: %d%% (%s / %s)\n", p.Percent, binary.FormatBytes(p.Downloaded), binary.FormatBytes(p.Total))
		return
	}
	r.printf("   ↳ Downloaded: %s\n", binary.FormatBytes(p.Downloaded))
}

// Outcome prints the final result of an install.
func (r *Reporter) Outcome(res *binary.Result) {
	switch {
	case res.OK():
		r.success(res)
	case res.Kind == binary.KindUnsupportedPlatform:
		r.unsupported(res.Key)
	default:
		r.failure(res)
	}
}

func (r *Reporter) success(res *binary.Result) {
	r.printf("   ↳ Binary size: %s\n", binary.FormatBytes(res.Size))
	r.println()
	if res.Updated {
		r.println(r.styles.success.Render(fmt.Sprintf("✓ Updated to v%s!", res.Descriptor.Version)))
	} else {
		r.println(r.styles.success.Render("✓ Installation complete!"))
	}
	r.println()
	r.println(r.banner(r.width))
	r.println()

	if len(r.examples) > 0 {
		r.println(r.styles.label.Render("  Get started:"))
		for _, ex := range r.examples {
			r.println("    " + r.styles.command.Render(ex))
		}
		r.println()
	}
}

func (r *Reporter) unsupported(key platform.Key) {
	r.println(r.styles.failure.Render(fmt.Sprintf("✗ Unsupported platform: %s", key)))
	r.println()
	r.println("Supported platforms:")
	for _, sp := range platform.Supported() {
		r.printf("  • %-14s %s\n", sp.Key, r.styles.detail.Render("("+sp.Label+")"))
	}
	r.println()
	if r.crate != "" {
		r.printf("Alternative: %s\n", r.styles.command.Render("cargo install "+r.crate))
		r.println()
	}
}

func (r *Reporter) failure(res *binary.Result) {
	d := res.Descriptor
	r.println()
	r.println(r.styles.failure.Render(fmt.Sprintf("✗ Failed to install: %v", res.Err)))
	r.println()
	r.println("Alternative installation methods:")
	r.println()
	r.println("  1. Build from source with Cargo (Rust):")
	r.println("     " + r.styles.command.Render(cargoFromSource(d.SourceURL())))
	r.println()
	r.println("  2. Download manually:")
	r.println("     " + r.styles.command.Render(d.URL()))
	r.println()
}

// SourceFallback prints the build-from-source alternative on its own, for
// failures that happen before a release could be located.
func (r *Reporter) SourceFallback(sourceURL string) {
	r.println()
	r.println("Alternative installation method:")
	r.println()
	r.println("  Build from source with Cargo (Rust):")
	r.println("     " + r.styles.command.Render(cargoFromSource(sourceURL)))
	r.println()
}

func cargoFromSource(sourceURL string) string {
	return "cargo install --git " + sourceURL
}
