package config

// Config holds the CLI configuration read from the YAML file in the user's
// home directory, optionally overridden by environment variables.
type Config struct {
	Endpoint     string            `yaml:"endpoint"`
	PrivateToken string            `yaml:"private_token"`
	AuthType     string            `yaml:"auth_type,omitempty"` // private_token (default), oauth2, ntlm
	Credentials  map[string]string `yaml:"credentials,omitempty"`

	TLSSkipVerify bool `yaml:"tls_skip_verify,omitempty"`
	HTTPTimeout   int  `yaml:"http_timeout_seconds,omitempty"`
	PerPage       int  `yaml:"per_page,omitempty"`

	Retry   RetryConfig   `yaml:"retry,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// RetryConfig holds settings for the client's retry policy.
type RetryConfig struct {
	MaxAttempts   int   `yaml:"max_attempts"`
	Backoff       int   `yaml:"backoff_seconds"`
	ExcludeErrors []int `yaml:"exclude_errors,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}
