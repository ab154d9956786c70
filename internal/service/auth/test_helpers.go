package auth

import (
	"time"
)

// NewTestTokenService creates a token service with an explicit secret,
// lifetime, and clock. The injectable clock makes expiry behavior
// deterministic in tests.
func NewTestTokenService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) TokenService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
	}
}
