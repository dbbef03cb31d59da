package binary

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/monorka/tabletrace-install/internal/platform"
)

// recordingObserver captures every notification for later assertions.
type recordingObserver struct {
	mu        sync.Mutex
	started   []string
	redirects []string
	progress  []Progress
	resolved  []Descriptor
}

func (r *recordingObserver) DownloadStarted(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, url)
}

func (r *recordingObserver) RedirectFollowed(location string, depth int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirects = append(r.redirects, location)
}

func (r *recordingObserver) Progress(p Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, p)
}

func (r *recordingObserver) Resolved(key platform.Key, d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = append(r.resolved, d)
}

// hopServer serves body at /hop/0/..., and /hop/N/... redirects to /hop/N-1/...
// with the given redirect status. requests counts every request served.
type hopServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests int
}

func newHopServer(t *testing.T, body []byte, redirectStatus int) *hopServer {
	t.Helper()

	hs := &hopServer{}
	hs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hs.mu.Lock()
		hs.requests++
		hs.mu.Unlock()

		parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/hop/"), "/", 2)
		n, err := strconv.Atoi(parts[0])
		if err != nil || len(parts) != 2 {
			http.NotFound(w, r)
			return
		}
		if n > 0 {
			http.Redirect(w, r, fmt.Sprintf("/hop/%d/%s", n-1, parts[1]), redirectStatus)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		// The client may hang up early on purpose; write errors are expected then.
		_, _ = w.Write(body)
	}))
	t.Cleanup(hs.Close)
	return hs
}

func (hs *hopServer) url(hops int) string {
	return fmt.Sprintf("%s/hop/%d/artifact", hs.URL, hops)
}

func (hs *hopServer) count() int {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.requests
}

// assertNoFile fails if path or its temp sibling exists.
func assertNoFile(t *testing.T, path string) {
	t.Helper()
	for _, p := range []string{path, path + ".tmp"} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s should not exist (stat error = %v)", p, err)
		}
	}
}

func payload(size int) []byte {
	return bytes.Repeat([]byte{0x7f}, size)
}
