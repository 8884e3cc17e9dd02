package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	require.Equal(t, "http://localhost:5000/api", cfg.GetAPIBaseURL())
	require.Equal(t, "Seller Console", cfg.GetAppName())
	require.Equal(t, 12*time.Minute, cfg.GetRenewalInterval())
	require.Equal(t, 60*time.Second, cfg.GetExpiryLeeway())
	require.Equal(t, 30*time.Second, cfg.GetRequestTimeout())
	require.Equal(t, 10, cfg.GetItemsPerPage())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(apiURLVar, "https://api.example.com/api")
	t.Setenv(passphraseVar, "hunter2")

	cfg := New()
	require.Equal(t, "https://api.example.com/api", cfg.GetAPIBaseURL())
	require.Equal(t, "hunter2", cfg.GetStorePassphrase())
}

func TestStateDirOverride(t *testing.T) {
	t.Setenv(stateDirVar, "/tmp/seller-test")
	require.Equal(t, "/tmp/seller-test", EnvVars{}.GetStateDir())
}
