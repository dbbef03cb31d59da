package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "TABLETRACE_INSTALL"

// Env holds environment overrides, e.g. TABLETRACE_INSTALL_BIN_DIR.
// Fields carry no envconfig tag so that unprefixed names such as OS or
// VERSION are never consulted.
type Env struct {
	Host       string `split_words:"true"`
	Repository string `split_words:"true"`
	Version    string `split_words:"true"`
	BinDir     string `split_words:"true"`
	OS         string `split_words:"true"`
	Arch       string `split_words:"true"`
	LogLevel   string `split_words:"true"`
}

// LoadEnv reads the overrides from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return Env{}, ConfigError.Wrap(fmt.Errorf("parsing environment variables: %w", err))
	}
	return e, nil
}
