package config

import (
	"os"
	"path/filepath"
)

const (
	apiURLVar     = "SELLER_API_URL"
	appNameVar    = "SELLER_APP_NAME"
	stateDirVar   = "SELLER_STATE_DIR"
	passphraseVar = "SELLER_STORE_PASSPHRASE"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiURLVar, "http://localhost:5000/api")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Seller Console")
}

func (EnvVars) GetStateDir() string {
	dir := os.Getenv(stateDirVar)
	if dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seller-console"
	}
	return filepath.Join(home, ".seller-console")
}

// GetStorePassphrase returns the passphrase used to seal tokens at rest.
// Empty means tokens are stored unsealed.
func (EnvVars) GetStorePassphrase() string {
	return GetEnv(passphraseVar, "")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
