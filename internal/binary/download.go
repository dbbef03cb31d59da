package binary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/monorka/tabletrace-install/internal/config"
)

const (
	// MaxRedirects is the number of 301/302 hops followed in one transfer.
	MaxRedirects = 5
	// ChunkSize is the read buffer size for streaming the response body.
	ChunkSize = 32 * 1024
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "tabletrace-install"
)

// Downloader streams release artifacts to disk. It follows redirects itself so
// the hop count and cleanup behaviour are under its control.
type Downloader struct {
	client    *http.Client
	userAgent string
	observer  TransferObserver
	logger    config.Logger
	create    func(name string) (io.WriteCloser, error)
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithHTTPClient replaces the HTTP client. Its redirect policy is overridden.
func WithHTTPClient(c *http.Client) DownloaderOption {
	return func(d *Downloader) {
		clone := *c
		d.client = &clone
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) DownloaderOption {
	return func(d *Downloader) {
		d.userAgent = ua
	}
}

// WithTransferObserver sets the receiver of progress notifications.
func WithTransferObserver(o TransferObserver) DownloaderOption {
	return func(d *Downloader) {
		if o != nil {
			d.observer = o
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l config.Logger) DownloaderOption {
	return func(d *Downloader) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDownloader creates a new downloader
func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		client:    &http.Client{},
		userAgent: DefaultUserAgent,
		observer:  NopObserver{},
		logger:    config.NopLogger(),
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return d
}

// Download fetches url into destPath and returns the number of bytes streamed.
//
// The body is written to destPath+".tmp" and renamed into place only after it
// was fully received and closed. An empty body is an IOError. On failure the
// temp file is removed and an existing file at destPath is left untouched.
func (d *Downloader) Download(ctx context.Context, url, destPath string) (int64, error) {
	t := newTransfer(destPath)

	d.observer.DownloadStarted(url)

	resp, err := d.follow(ctx, url, t)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := d.stream(resp, t); err != nil {
		return 0, err
	}

	return t.written, nil
}

// follow issues GET requests until a 200 arrives, following at most
// MaxRedirects 301/302 hops.
func (d *Downloader) follow(ctx context.Context, url string, t *transfer) (*http.Response, error) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, NetworkError.Wrap(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("User-Agent", d.userAgent)

		d.logger.Debug("requesting artifact", "url", url, "depth", t.depth)

		resp, err := d.client.Do(req)
		if err != nil {
			return nil, NetworkError.Wrap(fmt.Errorf("execute request: %w", err))
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil

		case http.StatusMovedPermanently, http.StatusFound:
			location, locErr := resp.Location()
			discard(resp)
			if locErr != nil {
				return nil, HTTPStatus.Wrap(fmt.Errorf("redirect without location: %w",
					&HTTPStatusError{StatusCode: resp.StatusCode, URL: url}))
			}
			if t.depth >= MaxRedirects {
				return nil, RedirectLimitExceeded.New("gave up after %d redirects at %s", MaxRedirects, url)
			}
			t.depth++
			url = location.String()
			d.logger.Debug("following redirect", "location", url, "depth", t.depth)
			d.observer.RedirectFollowed(url, t.depth)

		default:
			discard(resp)
			return nil, HTTPStatus.Wrap(&HTTPStatusError{StatusCode: resp.StatusCode, URL: url})
		}
	}
}

// stream copies the response body to disk chunk by chunk, reporting progress
// after each chunk has been written.
func (d *Downloader) stream(resp *http.Response, t *transfer) error {
	if err := os.MkdirAll(filepath.Dir(t.dest), 0755); err != nil {
		return IOError.Wrap(fmt.Errorf("create dest dir: %w", err))
	}

	tmpPath := t.dest + ".tmp"
	out, err := d.create(tmpPath)
	if err != nil {
		return IOError.Wrap(fmt.Errorf("create temp file: %w", err))
	}

	// Track whether we need to clean up the temp file
	cleanupNeeded := true
	closed := false
	defer func() {
		if !closed {
			out.Close()
		}
		if cleanupNeeded {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				d.logger.Warn("could not remove partial download", "path", tmpPath, "error", rmErr)
			}
		}
	}()

	t.total = resp.ContentLength
	buf := make([]byte, ChunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				return IOError.Wrap(fmt.Errorf("write %s: %w", tmpPath, err))
			}
			if p, ok := t.advance(n); ok {
				d.observer.Progress(p)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return NetworkError.Wrap(fmt.Errorf("read response body: %w", readErr))
		}
	}

	// An empty body must never replace an existing binary.
	if t.written == 0 {
		return IOError.New("empty response body from %s", resp.Request.URL)
	}

	closed = true
	if err := out.Close(); err != nil {
		return IOError.Wrap(fmt.Errorf("close temp file: %w", err))
	}

	if err := os.Rename(tmpPath, t.dest); err != nil {
		return IOError.Wrap(fmt.Errorf("rename temp file: %w", err))
	}

	cleanupNeeded = false
	d.logger.Debug("artifact written", "path", t.dest, "bytes", t.written)
	return nil
}

// discard drains a little of an unused body so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.CopyN(io.Discard, resp.Body, 4096)
	resp.Body.Close()
}
