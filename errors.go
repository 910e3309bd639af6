package jwt

import (
	"errors"
	"fmt"
)

// Predefined errors for token validation and verification
var (
	// ErrDecode is the base error wrapped by every DecodeError; use
	// errors.Is(err, ErrDecode) to match any structural decode failure.
	ErrDecode = errors.New("token is malformed")

	// ErrInvalidAlgorithm indicates that no accepted algorithm both matched
	// the declared "alg" header and verified the signature.
	ErrInvalidAlgorithm = errors.New("no accepted algorithm matched and verified the token")

	ErrExpiredSignature  = errors.New("token has expired (exp)")
	ErrImmatureSignature = errors.New("token is not yet valid (nbf)")
	ErrInvalidIssuedAt   = errors.New("token issued-at is in the future (iat)")
	ErrInvalidAudience   = errors.New("token audience does not match")
	ErrInvalidIssuer     = errors.New("token issuer does not match")

	// ErrNoPrivateKey is returned by Sign on verify-only algorithm instances.
	ErrNoPrivateKey = errors.New("algorithm holds no private key: verify-only")
)

// DecodeError reports a malformed token structure: wrong segment count,
// invalid base64url, JSON of the wrong shape, an unparsable timestamp claim,
// or a missing "alg" header.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

func newDecodeError(format string, args ...any) *DecodeError {
	if len(args) == 0 {
		return &DecodeError{Message: format}
	}
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}
