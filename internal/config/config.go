package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the brightray configuration.
type Config struct {
	App     AppConfig     `json:"app"`
	Desktop DesktopConfig `json:"desktop"`
	Daemon  DaemonConfig  `json:"daemon"`
}

// AppConfig describes the application identity used for notifications when
// the platform cannot provide one (no bundle metadata outside macOS).
type AppConfig struct {
	Name string `json:"name"`
	Icon string `json:"icon"` // Path to the notification icon (optional)
}

// DesktopConfig holds desktop notification settings.
type DesktopConfig struct {
	Enabled        *bool   `json:"enabled"`        // nil = true
	TimeoutSeconds int     `json:"timeoutSeconds"` // 0 = server default expiry
	Sound          bool    `json:"sound"`
	SoundFile      string  `json:"soundFile"`
	Volume         float64 `json:"volume"`         // 0.0-1.0, default 1.0
	AudioDevice    string  `json:"audioDevice"`    // Output device name (empty = system default)
	OnClickCommand string  `json:"onClickCommand"` // Shell command run when a notification is clicked (daemon mode)
}

// DaemonConfig holds notification daemon settings.
type DaemonConfig struct {
	IdleTimeoutSeconds int `json:"idleTimeoutSeconds"` // Auto-shutdown after inactivity (0 = disabled)
}

func boolPtr(v bool) *bool {
	return &v
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: "brightray",
		},
		Desktop: DesktopConfig{
			Enabled: boolPtr(true),
			Sound:   false,
			Volume:  1.0,
		},
		Daemon: DaemonConfig{
			IdleTimeoutSeconds: 300,
		},
	}
}

// Load loads configuration from a file.
// If the file doesn't exist, returns default config.
func Load(path string) (*Config, error) {
	if !fileExists(path) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Expand environment variables in paths
	config.App.Icon = os.ExpandEnv(config.App.Icon)
	config.Desktop.SoundFile = os.ExpandEnv(config.Desktop.SoundFile)

	config.ApplyDefaults()

	return config, nil
}

// DefaultPath returns the config file path: BRIGHTRAY_CONFIG when set,
// otherwise ~/.config/brightray/config.json.
func DefaultPath() (string, error) {
	if p := os.Getenv("BRIGHTRAY_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "brightray", "config.json"), nil
}

// LoadDefault loads the config from DefaultPath. A corrupted file is
// non-fatal: a warning goes to stderr and defaults are used.
func LoadDefault() *Config {
	path, err := DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using default config\n", err)
		return DefaultConfig()
	}

	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config from %s: %v, using defaults\n", path, err)
		return DefaultConfig()
	}
	return cfg
}

// ApplyDefaults fills in missing fields with default values.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "brightray"
	}
	if c.Desktop.Enabled == nil {
		c.Desktop.Enabled = boolPtr(true)
	}
	if c.Desktop.Volume == 0 {
		c.Desktop.Volume = 1.0
	}
	if c.Daemon.IdleTimeoutSeconds == 0 {
		c.Daemon.IdleTimeoutSeconds = 300
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Desktop.Volume < 0.0 || c.Desktop.Volume > 1.0 {
		return fmt.Errorf("desktop volume must be between 0.0 and 1.0 (got %.2f)", c.Desktop.Volume)
	}
	if c.Desktop.TimeoutSeconds < 0 {
		return fmt.Errorf("timeoutSeconds must be >= 0")
	}
	if c.Daemon.IdleTimeoutSeconds < 0 {
		return fmt.Errorf("idleTimeoutSeconds must be >= 0")
	}
	if c.Desktop.Sound && c.Desktop.SoundFile == "" {
		return fmt.Errorf("soundFile is required when sound is enabled")
	}
	return nil
}

// IsDesktopEnabled returns true if desktop notifications are enabled.
func (c *Config) IsDesktopEnabled() bool {
	if c.Desktop.Enabled == nil {
		return true
	}
	return *c.Desktop.Enabled
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
