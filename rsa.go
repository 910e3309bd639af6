package jwt

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
)

type rsaAlgorithm struct {
	name string
	hash crypto.Hash
	priv *rsa.PrivateKey
	pub  *rsa.PublicKey
}

// RS256 returns an RSASSA-PKCS1-v1_5 SHA-256 algorithm holding a private
// key, usable for both signing and verification.
func RS256(key *rsa.PrivateKey) Algorithm {
	return newRSA("RS256", crypto.SHA256, key, nil)
}

// RS384 returns an RSASSA-PKCS1-v1_5 SHA-384 algorithm holding a private key.
func RS384(key *rsa.PrivateKey) Algorithm {
	return newRSA("RS384", crypto.SHA384, key, nil)
}

// RS512 returns an RSASSA-PKCS1-v1_5 SHA-512 algorithm holding a private key.
func RS512(key *rsa.PrivateKey) Algorithm {
	return newRSA("RS512", crypto.SHA512, key, nil)
}

// RS256Verifier returns a verify-only RS256 algorithm holding a public key.
// Its Sign returns ErrNoPrivateKey.
func RS256Verifier(key *rsa.PublicKey) Algorithm {
	return newRSA("RS256", crypto.SHA256, nil, key)
}

// RS384Verifier returns a verify-only RS384 algorithm holding a public key.
func RS384Verifier(key *rsa.PublicKey) Algorithm {
	return newRSA("RS384", crypto.SHA384, nil, key)
}

// RS512Verifier returns a verify-only RS512 algorithm holding a public key.
func RS512Verifier(key *rsa.PublicKey) Algorithm {
	return newRSA("RS512", crypto.SHA512, nil, key)
}

func newRSA(name string, hash crypto.Hash, priv *rsa.PrivateKey, pub *rsa.PublicKey) *rsaAlgorithm {
	if priv != nil && pub == nil {
		pub = &priv.PublicKey
	}
	return &rsaAlgorithm{name: name, hash: hash, priv: priv, pub: pub}
}

func (a *rsaAlgorithm) Name() string {
	return a.name
}

func (a *rsaAlgorithm) Sign(signingInput []byte) ([]byte, error) {
	if a.priv == nil {
		return nil, ErrNoPrivateKey
	}
	return rsa.SignPKCS1v15(rand.Reader, a.priv, a.hash, hashSum(a.hash, signingInput))
}

func (a *rsaAlgorithm) Verify(signingInput, signature []byte) bool {
	if a.pub == nil {
		return false
	}
	return rsa.VerifyPKCS1v15(a.pub, a.hash, hashSum(a.hash, signingInput), signature) == nil
}
