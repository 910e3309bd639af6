package jwt

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// ClaimSet is a mapping from claim name to an arbitrary JSON-typed value.
// Claim names are case-sensitive. Standard claims (iss, aud, exp, nbf, iat)
// are stored untyped like every other claim; the typed accessors coerce.
//
// A ClaimSet is constructed from a parsed payload during decode, or from a
// Builder during encode, and is treated as immutable afterwards.
type ClaimSet struct {
	claims map[string]any
}

// NewClaimSet creates a ClaimSet from a raw mapping. The mapping is copied
// so later mutation of the argument does not leak into the set.
func NewClaimSet(claims map[string]any) ClaimSet {
	copied := make(map[string]any, len(claims))
	for k, v := range claims {
		copied[k] = v
	}
	return ClaimSet{claims: copied}
}

// Claims returns a copy of the underlying claim mapping.
func (c ClaimSet) Claims() map[string]any {
	copied := make(map[string]any, len(c.claims))
	for k, v := range c.claims {
		copied[k] = v
	}
	return copied
}

// Len returns the number of claims in the set.
func (c ClaimSet) Len() int {
	return len(c.claims)
}

// Get returns the raw value of a claim.
func (c ClaimSet) Get(key string) (any, bool) {
	v, ok := c.claims[key]
	return v, ok
}

// String returns a claim coerced to string.
func (c ClaimSet) String(key string) (string, bool) {
	s, ok := c.claims[key].(string)
	return s, ok
}

// Number returns a claim coerced to a float64. JSON numbers, json.Number
// values and native integer types all coerce.
func (c ClaimSet) Number(key string) (float64, bool) {
	v, ok := c.claims[key]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Bool returns a claim coerced to bool.
func (c ClaimSet) Bool(key string) (bool, bool) {
	b, ok := c.claims[key].(bool)
	return b, ok
}

// Strings returns a claim as a list of strings. A bare string yields a
// single-element list; an array yields its string elements. This matches
// the string-or-array shape of the "aud" claim.
func (c ClaimSet) Strings(key string) ([]string, bool) {
	switch v := c.claims[key].(type) {
	case string:
		return []string{v}, true
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Time returns a claim interpreted as a numeric date (seconds since the
// Unix epoch). Native numbers and decimal numeric strings both parse.
func (c ClaimSet) Time(key string) (time.Time, bool) {
	v, ok := c.claims[key]
	if !ok {
		return time.Time{}, false
	}
	return numericDate(v)
}

// payload returns the mapping to serialize during encode, never nil.
func (c ClaimSet) payload() map[string]any {
	if c.claims == nil {
		return map[string]any{}
	}
	return c.claims
}

// Validate checks the temporal claims and, when requested, audience and
// issuer. Checks run in a fixed order and the first failure wins:
// exp, nbf, iat, aud, iss. Absent claims are never validated.
func (c ClaimSet) Validate(opts ValidationOptions) error {
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	now := clock.Now()

	if v, ok := c.claims["exp"]; ok {
		exp, ok := numericDate(v)
		if !ok {
			return newDecodeError("Expiration claim (exp) must be a number")
		}
		if !exp.After(now.Add(-opts.Leeway)) {
			return ErrExpiredSignature
		}
	}

	if v, ok := c.claims["nbf"]; ok {
		nbf, ok := numericDate(v)
		if !ok {
			return newDecodeError("Not before claim (nbf) must be a number")
		}
		if nbf.After(now.Add(opts.Leeway)) {
			return ErrImmatureSignature
		}
	}

	if v, ok := c.claims["iat"]; ok {
		iat, ok := numericDate(v)
		if !ok {
			return newDecodeError("Issued at claim (iat) must be a number")
		}
		if iat.After(now.Add(opts.Leeway)) {
			return ErrInvalidIssuedAt
		}
	}

	if opts.Audience != "" {
		if v, ok := c.claims["aud"]; ok {
			if !audienceContains(v, opts.Audience) {
				return ErrInvalidAudience
			}
		}
	}

	if opts.Issuer != "" {
		if v, ok := c.claims["iss"]; ok {
			iss, ok := v.(string)
			if !ok || iss != opts.Issuer {
				return ErrInvalidIssuer
			}
		}
	}

	return nil
}

// audienceContains reports whether an "aud" claim value, a string or an
// array of strings, contains the wanted audience.
func audienceContains(claim any, audience string) bool {
	switch v := claim.(type) {
	case string:
		return v == audience
	case []string:
		for _, item := range v {
			if item == audience {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == audience {
				return true
			}
		}
	}
	return false
}

// Bounds for numeric date claims, 0001-01-01T00:00:00Z through
// 9999-12-31T23:59:59Z. JSON numbers reach far beyond int64 seconds and
// the bare float-to-int conversion wraps, so values outside the range are
// clamped to its edges instead of converted.
const (
	maxUnix = 253402300799
	minUnix = -62135596800
)

// numericDate coerces a claim value to a timestamp. Accepted forms are
// native numeric types and decimal numeric strings; anything else,
// including NaN, is unparsable.
func numericDate(v any) (time.Time, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return time.Time{}, false
	}
	if f >= maxUnix {
		return time.Unix(maxUnix, 0).UTC(), true
	}
	if f <= minUnix {
		return time.Unix(minUnix, 0).UTC(), true
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC(), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
