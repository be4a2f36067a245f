package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "brightray", cfg.App.Name)
	assert.True(t, cfg.IsDesktopEnabled())
	assert.False(t, cfg.Desktop.Sound)
	assert.Equal(t, 1.0, cfg.Desktop.Volume)
	assert.Equal(t, 300, cfg.Daemon.IdleTimeoutSeconds)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, "brightray", cfg.App.Name)
}

func TestLoad_ParsesAndAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"app":{"name":"myapp"},"desktop":{"timeoutSeconds":10}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "myapp", cfg.App.Name)
	assert.Equal(t, 10, cfg.Desktop.TimeoutSeconds)
	// Unset fields get defaults
	assert.True(t, cfg.IsDesktopEnabled())
	assert.Equal(t, 1.0, cfg.Desktop.Volume)
}

func TestLoad_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ExpandsEnvInPaths(t *testing.T) {
	t.Setenv("BRIGHTRAY_TEST_HOME", "/opt/brightray")
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"app":{"icon":"${BRIGHTRAY_TEST_HOME}/icon.png"},"desktop":{"soundFile":"${BRIGHTRAY_TEST_HOME}/ding.wav","sound":true}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/brightray/icon.png", cfg.App.Icon)
	assert.Equal(t, "/opt/brightray/ding.wav", cfg.Desktop.SoundFile)
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("BRIGHTRAY_CONFIG", "/etc/brightray.json")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/brightray.json", path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"volume too high", func(c *Config) { c.Desktop.Volume = 1.5 }, true},
		{"volume negative", func(c *Config) { c.Desktop.Volume = -0.1 }, true},
		{"negative timeout", func(c *Config) { c.Desktop.TimeoutSeconds = -1 }, true},
		{"negative idle timeout", func(c *Config) { c.Daemon.IdleTimeoutSeconds = -1 }, true},
		{"sound without file", func(c *Config) { c.Desktop.Sound = true }, true},
		{"sound with file", func(c *Config) {
			c.Desktop.Sound = true
			c.Desktop.SoundFile = "/tmp/ding.wav"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
