package binary

import (
	"fmt"
	"net/http"

	"github.com/zeebo/errs"

	"github.com/monorka/tabletrace-install/internal/platform"
)

// Error classes for the install pipeline. Each failure returned by this
// package belongs to exactly one class.
var (
	// RedirectLimitExceeded is returned when a redirect chain is longer than MaxRedirects.
	RedirectLimitExceeded = errs.Class("too many redirects")
	// HTTPStatus is returned for responses that are neither 200 nor a followed redirect.
	HTTPStatus = errs.Class("http status")
	// NetworkError covers request and response body failures.
	NetworkError = errs.Class("network error")
	// IOError covers local filesystem failures while writing the artifact.
	IOError = errs.Class("io error")
	// PermissionError is returned when the executable bit cannot be set.
	// The artifact is left in place.
	PermissionError = errs.Class("permission error")
)

// HTTPStatusError carries the status of a rejected response.
type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d (%s) from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// ErrorKind is the taxonomy entry of an install failure.
type ErrorKind int

const (
	// KindNone means the install succeeded.
	KindNone ErrorKind = iota
	KindUnsupportedPlatform
	KindRedirectLimit
	KindHTTPStatus
	KindNetwork
	KindIO
	KindPermission
	KindUnknown
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnsupportedPlatform:
		return "unsupported platform"
	case KindRedirectLimit:
		return "redirect limit exceeded"
	case KindHTTPStatus:
		return "http status"
	case KindNetwork:
		return "network"
	case KindIO:
		return "io"
	case KindPermission:
		return "permission"
	default:
		return "unknown"
	}
}

// Classify maps an error to its taxonomy kind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case platform.UnsupportedPlatform.Has(err):
		return KindUnsupportedPlatform
	case RedirectLimitExceeded.Has(err):
		return KindRedirectLimit
	case HTTPStatus.Has(err):
		return KindHTTPStatus
	case NetworkError.Has(err):
		return KindNetwork
	case IOError.Has(err):
		return KindIO
	case PermissionError.Has(err):
		return KindPermission
	default:
		return KindUnknown
	}
}
