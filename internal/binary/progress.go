package binary

import (
	"github.com/monorka/tabletrace-install/internal/platform"
)

// Progress is one progress notification for a transfer.
type Progress struct {
	// Downloaded is the number of bytes written so far.
	Downloaded int64
	// Total is the expected size from Content-Length, or -1 if unknown.
	Total int64
	// Percent is the last milestone reached (0, 10, ..., 100), or -1 if
	// Total is unknown.
	Percent int
}

// Known reports whether the total size, and so a percentage, is available.
func (p Progress) Known() bool {
	return p.Total > 0
}

// TransferObserver receives notifications from a single download.
type TransferObserver interface {
	DownloadStarted(url string)
	RedirectFollowed(location string, depth int)
	Progress(p Progress)
}

// Observer receives notifications from the whole install pipeline.
type Observer interface {
	TransferObserver
	Resolved(key platform.Key, d Descriptor)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) DownloadStarted(string)            {}
func (NopObserver) RedirectFollowed(string, int)      {}
func (NopObserver) Progress(Progress)                 {}
func (NopObserver) Resolved(platform.Key, Descriptor) {}

// transfer is the state of one download attempt. It is created per call and
// never shared.
type transfer struct {
	dest        string
	written     int64
	total       int64
	lastPercent int
	depth       int
}

func newTransfer(dest string) *transfer {
	return &transfer{dest: dest, total: -1, lastPercent: -1}
}

// advance accounts for n more bytes and returns the notification to emit, if
// any. With a known total only a new multiple-of-ten milestone is reported;
// without one every chunk is reported as a byte count.
func (t *transfer) advance(n int) (Progress, bool) {
	t.written += int64(n)

	if t.total <= 0 {
		return Progress{Downloaded: t.written, Total: -1, Percent: -1}, true
	}

	percent := int(t.written * 100 / t.total)
	if percent > 100 {
		percent = 100
	}
	milestone := percent - percent%10
	if milestone <= t.lastPercent {
		return Progress{}, false
	}
	t.lastPercent = milestone

	return Progress{Downloaded: t.written, Total: t.total, Percent: milestone}, true
}
