// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	p := cfg.Panel

	// ------------------------------------------------------------
	// TOOL PATHS
	// ------------------------------------------------------------

	if strings.TrimSpace(p.ConfigTool) == "" {
		return errors.New("config: config_tool is required")
	}
	if strings.TrimSpace(p.ViewerTool) == "" {
		return errors.New("config: viewer_tool is required")
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	if p.TimeoutMs < 0 {
		return fmt.Errorf("config: timeout_ms must be >= 0, got %d", p.TimeoutMs)
	}

	// ------------------------------------------------------------
	// SERVER
	// ------------------------------------------------------------

	// Listen is optional (Normalize defaults it) but must be a
	// host:port shape when set.
	if p.Server.Listen != "" && !strings.Contains(p.Server.Listen, ":") {
		return fmt.Errorf("config: server.listen must be host:port, got %q", p.Server.Listen)
	}

	return nil
}
