package config

import "time"

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetRequestTimeout() time.Duration {
	return 30 * time.Second
}

// GetRenewalInterval is how often the background renewal fires,
// regardless of token state.
func (Session) GetRenewalInterval() time.Duration {
	return 12 * time.Minute
}

// GetExpiryLeeway is the window before expiry in which a token is
// refreshed proactively rather than waiting for the renewal tick.
func (Session) GetExpiryLeeway() time.Duration {
	return 60 * time.Second
}

func (Session) GetItemsPerPage() int {
	return 10
}
