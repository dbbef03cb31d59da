package config

import (
	"fmt"

	"github.com/zeebo/errs"
)

// ConfigError is the class of every failure to assemble install settings.
var ConfigError = errs.Class("config error")

// ParseError represents a manifest parsing error with a friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}
