package config

import "time"

type Config interface {
	EnvConfig
	SessionConfig
}

type EnvConfig interface {
	GetAPIBaseURL() string
	GetAppName() string
	GetStateDir() string
	GetStorePassphrase() string
	GetEnv() string
}

type SessionConfig interface {
	GetRequestTimeout() time.Duration
	GetRenewalInterval() time.Duration
	GetExpiryLeeway() time.Duration
	GetItemsPerPage() int
}

type mainConfig struct {
	FileVars
	Session
}

// New builds the console configuration. Values resolve in order:
// environment variable, config file entry, built-in default.
func New() Config {
	return mainConfig{NewFileVars(), Session{}}
}
