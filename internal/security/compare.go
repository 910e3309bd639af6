// Package security provides the constant-time primitives shared by the
// signature verifiers.
package security

import "crypto/subtle"

// Equal reports whether a and b are equal without leaking the position of
// a mismatch through timing.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
