package upsell

import "errors"

// Provider failure kinds. Rate-limit and quota conditions get their
// own sentinels so callers can log distinct notices, but all of them
// resolve through the same fallback suggestion path — none is fatal.
var (
	ErrRateLimited    = errors.New("suggestion provider rate limit exceeded")
	ErrQuotaExhausted = errors.New("suggestion provider credits exhausted")
	ErrParse          = errors.New("no valid JSON array in provider response")
)
