package jwt

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"
)

type ecdsaAlgorithm struct {
	name  string
	hash  crypto.Hash
	curve elliptic.Curve
	// keySize is the byte width of each of R and S in the raw signature
	// form of RFC 7518 §3.4.
	keySize int
	priv    *ecdsa.PrivateKey
	pub     *ecdsa.PublicKey
}

// ES256 returns an ECDSA P-256 SHA-256 algorithm holding a private key,
// usable for both signing and verification. Signatures use the raw R||S
// form, not ASN.1 DER.
func ES256(key *ecdsa.PrivateKey) Algorithm {
	return newECDSA("ES256", crypto.SHA256, elliptic.P256(), key, nil)
}

// ES384 returns an ECDSA P-384 SHA-384 algorithm holding a private key.
func ES384(key *ecdsa.PrivateKey) Algorithm {
	return newECDSA("ES384", crypto.SHA384, elliptic.P384(), key, nil)
}

// ES512 returns an ECDSA P-521 SHA-512 algorithm holding a private key.
func ES512(key *ecdsa.PrivateKey) Algorithm {
	return newECDSA("ES512", crypto.SHA512, elliptic.P521(), key, nil)
}

// ES256Verifier returns a verify-only ES256 algorithm holding a public key.
// Its Sign returns ErrNoPrivateKey.
func ES256Verifier(key *ecdsa.PublicKey) Algorithm {
	return newECDSA("ES256", crypto.SHA256, elliptic.P256(), nil, key)
}

// ES384Verifier returns a verify-only ES384 algorithm holding a public key.
func ES384Verifier(key *ecdsa.PublicKey) Algorithm {
	return newECDSA("ES384", crypto.SHA384, elliptic.P384(), nil, key)
}

// ES512Verifier returns a verify-only ES512 algorithm holding a public key.
func ES512Verifier(key *ecdsa.PublicKey) Algorithm {
	return newECDSA("ES512", crypto.SHA512, elliptic.P521(), nil, key)
}

func newECDSA(name string, hash crypto.Hash, curve elliptic.Curve, priv *ecdsa.PrivateKey, pub *ecdsa.PublicKey) *ecdsaAlgorithm {
	if priv != nil && pub == nil {
		pub = &priv.PublicKey
	}
	return &ecdsaAlgorithm{
		name:    name,
		hash:    hash,
		curve:   curve,
		keySize: (curve.Params().BitSize + 7) / 8,
		priv:    priv,
		pub:     pub,
	}
}

func (a *ecdsaAlgorithm) Name() string {
	return a.name
}

func (a *ecdsaAlgorithm) Sign(signingInput []byte) ([]byte, error) {
	if a.priv == nil {
		return nil, ErrNoPrivateKey
	}
	if a.priv.Curve != a.curve {
		return nil, fmt.Errorf("key curve %s does not match %s", a.priv.Curve.Params().Name, a.name)
	}

	r, s, err := ecdsa.Sign(rand.Reader, a.priv, hashSum(a.hash, signingInput))
	if err != nil {
		return nil, fmt.Errorf("ecdsa signing failed: %w", err)
	}

	sig := make([]byte, 2*a.keySize)
	r.FillBytes(sig[:a.keySize])
	s.FillBytes(sig[a.keySize:])
	return sig, nil
}

func (a *ecdsaAlgorithm) Verify(signingInput, signature []byte) bool {
	if a.pub == nil || a.pub.Curve != a.curve {
		return false
	}
	if len(signature) != 2*a.keySize {
		return false
	}

	r := new(big.Int).SetBytes(signature[:a.keySize])
	s := new(big.Int).SetBytes(signature[a.keySize:])
	return ecdsa.Verify(a.pub, hashSum(a.hash, signingInput), r, s)
}
