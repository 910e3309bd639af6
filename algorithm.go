package jwt

import (
	"crypto"

	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Algorithm is a signing algorithm for both signing and verifying a token.
// Name is the canonical identifier written to the "alg" header and matched
// against it during verification.
//
// Verify must never panic or return an error: any failure of the underlying
// primitive, including wrong key types or malformed signatures, is reported
// as false. Implementations hold only static key material and are safe for
// concurrent use.
type Algorithm interface {
	Name() string
	Sign(signingInput []byte) ([]byte, error)
	Verify(signingInput, signature []byte) bool
}

// None returns the "none" algorithm: Sign produces an empty signature and
// Verify accepts only an empty signature. It must never be part of a
// default accepted-algorithm list; callers opt in explicitly.
func None() Algorithm {
	return noneAlgorithm{}
}

type noneAlgorithm struct{}

func (noneAlgorithm) Name() string {
	return "none"
}

func (noneAlgorithm) Sign([]byte) ([]byte, error) {
	return nil, nil
}

func (noneAlgorithm) Verify(_, signature []byte) bool {
	return len(signature) == 0
}

func hashSum(h crypto.Hash, data []byte) []byte {
	hasher := h.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}
