package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level application configuration.
type Config struct {
	TenantURL          string       `mapstructure:"tenant_url" yaml:"tenant_url"`
	APIKey             string       `mapstructure:"api_key" yaml:"api_key"`
	ScriptsDir         string       `mapstructure:"scripts_dir" yaml:"scripts_dir"`
	HTTPTimeoutSeconds int          `mapstructure:"http_timeout_seconds" yaml:"http_timeout_seconds"`
	Reload             ReloadConfig `mapstructure:"reload" yaml:"reload"`
}

// ReloadConfig controls reload submission and log polling.
type ReloadConfig struct {
	Weight              int  `mapstructure:"weight" yaml:"weight"`
	Partial             bool `mapstructure:"partial" yaml:"partial"`
	PollIntervalSeconds int  `mapstructure:"poll_interval_seconds" yaml:"poll_interval_seconds"`
}

// DefaultConfig returns a config with sensible defaults. Tenant URL and API
// key have no defaults; they come from the config file or the environment.
func DefaultConfig() Config {
	return Config{
		ScriptsDir:         "scripts",
		HTTPTimeoutSeconds: 30,
		Reload: ReloadConfig{
			Weight:              1,
			Partial:             false,
			PollIntervalSeconds: 1,
		},
	}
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".qlikctl", "config.yaml"), nil
}

// ValidateRemote checks that the config is usable for remote API calls.
func (c Config) ValidateRemote() error {
	if c.TenantURL == "" {
		return fmt.Errorf("tenant_url is not set; set QLIK_TENANT_URL or tenant_url in the config file")
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key is not set; set QLIK_API_KEY or api_key in the config file")
	}
	return nil
}
