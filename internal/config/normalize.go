// internal/config/normalize.go
package config

import "path/filepath"

// Defaults applied by Normalize.
const (
	DefaultTimeoutMs   = 10000
	DefaultDownloadDir = "downloads"
	DefaultListen      = "127.0.0.1:8421"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	p := &cfg.Panel

	if p.TimeoutMs == 0 {
		p.TimeoutMs = DefaultTimeoutMs
	}
	if p.DownloadDir == "" {
		p.DownloadDir = DefaultDownloadDir
	}
	if p.Server.Listen == "" {
		p.Server.Listen = DefaultListen
	}

	p.ConfigTool = filepath.Clean(p.ConfigTool)
	p.ViewerTool = filepath.Clean(p.ViewerTool)
	p.DownloadDir = filepath.Clean(p.DownloadDir)
}
