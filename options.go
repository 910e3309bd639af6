package jwt

import "time"

// DecodeOptions controls verification during Decode. The zero value asks
// for full verification with no audience or issuer requirement, zero
// leeway and the system clock.
type DecodeOptions struct {
	// SkipVerification disables claim validation and signature verification
	// entirely. The caller assumes responsibility for trusting the result.
	SkipVerification bool

	// Audience, when non-empty, must be contained in the token's "aud" claim.
	Audience string

	// Issuer, when non-empty, must equal the token's "iss" claim.
	Issuer string

	// Leeway is the tolerance window applied to time-based claim checks to
	// absorb clock skew.
	Leeway time.Duration

	// Clock supplies the current time; nil means time.Now.
	Clock Clock
}

// ValidationOptions parameterizes ClaimSet.Validate.
type ValidationOptions struct {
	Audience string
	Issuer   string
	Leeway   time.Duration
	Clock    Clock
}
