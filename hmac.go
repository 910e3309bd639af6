package jwt

import (
	"crypto"
	"crypto/hmac"
	"fmt"

	"github.com/laohac8x/JSONWebToken/internal/security"
)

type hmacAlgorithm struct {
	name   string
	hash   crypto.Hash
	secret []byte
}

// HS256 returns an HMAC-SHA256 algorithm using the given shared secret.
func HS256(secret []byte) Algorithm {
	return newHMAC("HS256", crypto.SHA256, secret)
}

// HS384 returns an HMAC-SHA384 algorithm using the given shared secret.
func HS384(secret []byte) Algorithm {
	return newHMAC("HS384", crypto.SHA384, secret)
}

// HS512 returns an HMAC-SHA512 algorithm using the given shared secret.
func HS512(secret []byte) Algorithm {
	return newHMAC("HS512", crypto.SHA512, secret)
}

func newHMAC(name string, hash crypto.Hash, secret []byte) *hmacAlgorithm {
	return &hmacAlgorithm{
		name:   name,
		hash:   hash,
		secret: append([]byte(nil), secret...),
	}
}

func (a *hmacAlgorithm) Name() string {
	return a.name
}

func (a *hmacAlgorithm) Sign(signingInput []byte) ([]byte, error) {
	if !a.hash.Available() {
		return nil, fmt.Errorf("hash function %v not available", a.hash)
	}

	mac := hmac.New(a.hash.New, a.secret)
	mac.Write(signingInput)
	return mac.Sum(nil), nil
}

func (a *hmacAlgorithm) Verify(signingInput, signature []byte) bool {
	expected, err := a.Sign(signingInput)
	if err != nil {
		return false
	}
	return security.Equal(signature, expected)
}
