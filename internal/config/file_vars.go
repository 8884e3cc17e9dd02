package config

import (
	"os"

	"github.com/spf13/viper"
)

// FileVars layers an optional config file over the environment. A value set
// in the environment always wins; the file fills in the rest.
type FileVars struct {
	EnvVars
	v *viper.Viper
}

var _ EnvConfig = FileVars{}

// NewFileVars reads <state dir>/config.yaml if it exists. A missing file is
// not an error.
func NewFileVars() FileVars {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(EnvVars{}.GetStateDir())
	v.AddConfigPath(".")
	_ = v.ReadInConfig()
	return FileVars{v: v}
}

func (f FileVars) GetAPIBaseURL() string {
	return f.resolve(apiURLVar, "api_url", f.EnvVars.GetAPIBaseURL)
}

func (f FileVars) GetAppName() string {
	return f.resolve(appNameVar, "app_name", f.EnvVars.GetAppName)
}

func (f FileVars) GetStorePassphrase() string {
	return f.resolve(passphraseVar, "store_passphrase", f.EnvVars.GetStorePassphrase)
}

func (f FileVars) resolve(envVar, fileKey string, fallback func() string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	if f.v != nil && f.v.IsSet(fileKey) {
		return f.v.GetString(fileKey)
	}
	return fallback()
}
