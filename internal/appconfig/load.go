package appconfig

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the provided path. If path is empty, uses
// DefaultConfigPath. A missing config file is not an error; environment
// variables and defaults still apply.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("scripts_dir", cfg.ScriptsDir)
	v.SetDefault("http_timeout_seconds", cfg.HTTPTimeoutSeconds)
	v.SetDefault("reload.weight", cfg.Reload.Weight)
	v.SetDefault("reload.partial", cfg.Reload.Partial)
	v.SetDefault("reload.poll_interval_seconds", cfg.Reload.PollIntervalSeconds)

	// The underscore-wrapped names are accepted for compatibility with
	// earlier tooling that used them.
	_ = v.BindEnv("tenant_url", "QLIK_TENANT_URL", "_QLIK_TENANT_URL_")
	_ = v.BindEnv("api_key", "QLIK_API_KEY", "_QLIK_API_KEY_")
	_ = v.BindEnv("scripts_dir", "QLIK_SCRIPTS_DIR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.TenantURL = strings.TrimRight(strings.TrimSpace(cfg.TenantURL), "/")
	cfg.ScriptsDir = expandEnv(cfg.ScriptsDir)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.TenantURL != "" {
		parsed, err := url.Parse(cfg.TenantURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("tenant_url must include scheme and host (e.g. https://tenant.eu.qlikcloud.com/api/v1)")
		}
	}
	if cfg.ScriptsDir == "" {
		return fmt.Errorf("scripts_dir must not be empty")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("http_timeout_seconds must be positive")
	}
	if cfg.Reload.PollIntervalSeconds <= 0 {
		return fmt.Errorf("reload.poll_interval_seconds must be positive")
	}
	return nil
}

func expandEnv(value string) string {
	if value == "" {
		return value
	}
	return os.Expand(value, func(key string) string {
		if key == "" {
			return ""
		}
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		return "$" + key
	})
}

// WriteDefault writes the default config to the target path.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
