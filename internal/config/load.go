package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab-cli/internal/util"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file created in the user's home directory.
const DefaultFileName = ".gitlab-cli.yml"

// Environment variables recognized as overrides.
const (
	EnvEndpoint     = "GITLAB_API_ENDPOINT"
	EnvPrivateToken = "GITLAB_API_PRIVATE_TOKEN"
)

// DefaultPath returns the path of the config file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads the YAML configuration file, expands environment variables in
// string values, applies environment overrides and defaults. A missing file is
// not an error: the environment alone can provide endpoint and token.
func Load(filename string) (*Config, error) {
	var config Config

	fileBytes, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(fileBytes, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in '%s': %w", filename, err)
		}
	case os.IsNotExist(err):
		// Fall through to env-only configuration.
	default:
		return nil, fmt.Errorf("failed to read config file '%s': %w", filename, err)
	}

	config.Endpoint = util.ExpandEnvUniversal(config.Endpoint)
	config.PrivateToken = util.ExpandEnvUniversal(config.PrivateToken)
	for k, v := range config.Credentials {
		config.Credentials[k] = util.ExpandEnvUniversal(v)
	}

	if v := os.Getenv(EnvEndpoint); v != "" {
		config.Endpoint = v
	}
	if v := os.Getenv(EnvPrivateToken); v != "" {
		config.PrivateToken = v
	}

	applyDefaults(&config)
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.AuthType == "" {
		config.AuthType = "private_token"
	}
	config.AuthType = strings.ToLower(config.AuthType)
	if config.Retry.MaxAttempts <= 0 {
		config.Retry.MaxAttempts = 1
	}
	if config.Retry.Backoff <= 0 {
		config.Retry.Backoff = 1
	}
	if config.HTTPTimeout <= 0 {
		config.HTTPTimeout = 30
	}
	if config.PerPage <= 0 {
		config.PerPage = 100
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

func validate(config *Config) error {
	switch config.AuthType {
	case "private_token", "oauth2":
	case "ntlm":
		if config.Credentials["username"] == "" || config.Credentials["password"] == "" {
			return fmt.Errorf("auth_type 'ntlm' requires 'username' and 'password' in credentials")
		}
	default:
		return fmt.Errorf("unsupported auth_type '%s' (want private_token, oauth2 or ntlm)", config.AuthType)
	}
	return nil
}
