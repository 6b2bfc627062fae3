// Package config holds the dispatch façade's process-wide configuration:
// whether to honor the arch-selected backend or force a specific one, for
// debugging and benchmarking. It carries no conversion logic of its own.
//
// The mutex-guarded package-level Config, with a Configure/Get pair where
// Get returns a defensive copy, follows the same shape the float16 package
// this repository grew from uses for its own global configuration — here
// with a viper-backed Load so the override can also come from an
// environment variable instead of only a Configure call.
package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Backend names a conversion backend a caller can force onto the façade,
// overriding its normal build-tag/arch selection. It exists only for
// benchmarking and debugging facade.go's dispatch decisions.
type Backend string

const (
	// BackendAuto lets the façade pick per its normal GOARCH rules.
	BackendAuto Backend = "auto"
	// BackendSoftware forces every round-mode entry point onto the
	// software kernel, even on architectures where hybrid/native would
	// normally be used.
	BackendSoftware Backend = "software"
	// BackendHybrid forces the hybrid kernel where one exists for the
	// requested conversion, regardless of build target.
	BackendHybrid Backend = "hybrid"
)

// Config is the façade's process-wide configuration.
type Config struct {
	// ForceBackend overrides the façade's normal backend selection.
	// BackendAuto (the default) leaves dispatch alone.
	ForceBackend Backend
}

// DefaultConfig returns the configuration the façade uses until Configure
// is called or the environment is loaded with Load.
func DefaultConfig() *Config {
	return &Config{ForceBackend: BackendAuto}
}

var (
	mu      sync.RWMutex
	current = DefaultConfig()
)

// Configure replaces the package's active configuration.
func Configure(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	c := *cfg
	current = &c
}

// Get returns a copy of the active configuration, safe for the caller to
// mutate without affecting the package's state.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	c := *current
	return &c
}

// Load builds a Config from the process environment (FLOATCONV_* variables)
// and applies it. The returned error is always nil: an unset or
// unrecognised FLOATCONV_FORCE_BACKEND value falls back to BackendAuto.
func Load() error {
	v := viper.New()
	v.SetEnvPrefix("floatconv")
	v.AutomaticEnv()
	v.SetDefault("force_backend", string(BackendAuto))

	backend := Backend(strings.ToLower(v.GetString("force_backend")))
	switch backend {
	case BackendAuto, BackendSoftware, BackendHybrid:
	default:
		backend = BackendAuto
	}

	Configure(&Config{ForceBackend: backend})
	return nil
}
