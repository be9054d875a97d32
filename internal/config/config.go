// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Panel PanelConfig `yaml:"diagpanel"`
}

// ---- PANEL ----

type PanelConfig struct {
	// Path to the device-configuration utility.
	ConfigTool string `yaml:"config_tool"`

	// Path to the raw-session-file viewer.
	ViewerTool string `yaml:"viewer_tool"`

	// Per-invocation timeout. 0 means the default.
	TimeoutMs int `yaml:"timeout_ms"`

	// Directory session downloads land in.
	DownloadDir string `yaml:"download_dir"`

	Server ServerConfig `yaml:"server"`
}

// ---- SERVER ----

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// Load reads and decodes a config file. Decoding only: call Validate
// and then Normalize before using the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return &cfg, nil
}
