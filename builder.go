package jwt

import (
	"time"

	"github.com/google/uuid"
)

// Builder accumulates claims for encoding. Setters return the receiver so
// calls chain; the accumulated mapping becomes a ClaimSet when Claims or
// Sign is called. The builder performs no validation.
type Builder struct {
	claims map[string]any
}

// NewBuilder returns an empty claim builder.
func NewBuilder() *Builder {
	return &Builder{claims: make(map[string]any, 8)}
}

// Issuer sets the "iss" claim.
func (b *Builder) Issuer(issuer string) *Builder {
	b.claims["iss"] = issuer
	return b
}

// Subject sets the "sub" claim.
func (b *Builder) Subject(subject string) *Builder {
	b.claims["sub"] = subject
	return b
}

// Audience sets the "aud" claim. A single value is stored as a bare
// string, several values as an array, matching the wire shapes of the
// claim.
func (b *Builder) Audience(audience ...string) *Builder {
	switch len(audience) {
	case 0:
	case 1:
		b.claims["aud"] = audience[0]
	default:
		b.claims["aud"] = append([]string(nil), audience...)
	}
	return b
}

// ExpiresAt sets the "exp" claim as a Unix timestamp.
func (b *Builder) ExpiresAt(t time.Time) *Builder {
	b.claims["exp"] = t.Unix()
	return b
}

// ExpiresIn sets the "exp" claim to now plus the given duration.
func (b *Builder) ExpiresIn(d time.Duration) *Builder {
	return b.ExpiresAt(time.Now().Add(d))
}

// NotBefore sets the "nbf" claim as a Unix timestamp.
func (b *Builder) NotBefore(t time.Time) *Builder {
	b.claims["nbf"] = t.Unix()
	return b
}

// IssuedAt sets the "iat" claim as a Unix timestamp.
func (b *Builder) IssuedAt(t time.Time) *Builder {
	b.claims["iat"] = t.Unix()
	return b
}

// TokenID sets the "jti" claim to a fresh random identifier.
func (b *Builder) TokenID() *Builder {
	b.claims["jti"] = uuid.NewString()
	return b
}

// Claim sets an arbitrary claim.
func (b *Builder) Claim(key string, value any) *Builder {
	b.claims[key] = value
	return b
}

// Claims finalizes the builder into a ClaimSet. The builder remains usable
// afterwards; the set holds its own copy.
func (b *Builder) Claims() ClaimSet {
	return NewClaimSet(b.claims)
}

// Sign finalizes the builder and encodes a token in one call.
func (b *Builder) Sign(algorithm Algorithm, headers ...map[string]any) (string, error) {
	return Encode(b.Claims(), algorithm, headers...)
}
