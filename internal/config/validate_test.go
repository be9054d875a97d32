// internal/config/validate_test.go
package config

import "testing"

func validConfig() *Config {
	return &Config{
		Panel: PanelConfig{
			ConfigTool: "/opt/wearable/ConfigDevices.exe",
			ViewerTool: "/opt/wearable/viewer.exe",
		},
	}
}

// ---- tests ----

func TestValidate_OK(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RequiresConfigTool(t *testing.T) {
	cfg := validConfig()
	cfg.Panel.ConfigTool = "  "

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_RequiresViewerTool(t *testing.T) {
	cfg := validConfig()
	cfg.Panel.ViewerTool = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Panel.TimeoutMs = -1

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_BadListen(t *testing.T) {
	cfg := validConfig()
	cfg.Panel.Server.Listen = "localhost"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := validConfig()
	Normalize(cfg)

	if cfg.Panel.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("timeout %d, want %d", cfg.Panel.TimeoutMs, DefaultTimeoutMs)
	}
	if cfg.Panel.DownloadDir != DefaultDownloadDir {
		t.Fatalf("download dir %q, want %q", cfg.Panel.DownloadDir, DefaultDownloadDir)
	}
	if cfg.Panel.Server.Listen != DefaultListen {
		t.Fatalf("listen %q, want %q", cfg.Panel.Server.Listen, DefaultListen)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Panel.TimeoutMs = 2500
	cfg.Panel.Server.Listen = "0.0.0.0:9000"
	Normalize(cfg)

	if cfg.Panel.TimeoutMs != 2500 {
		t.Fatalf("timeout %d, want 2500", cfg.Panel.TimeoutMs)
	}
	if cfg.Panel.Server.Listen != "0.0.0.0:9000" {
		t.Fatalf("listen %q, want 0.0.0.0:9000", cfg.Panel.Server.Listen)
	}
}
