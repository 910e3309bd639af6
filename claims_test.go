package jwt

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

// ============================================================================
// CLAIM VALIDATION TESTS
// ============================================================================

func TestValidateExpiration(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	tests := []struct {
		name    string
		exp     any
		leeway  time.Duration
		wantErr error
	}{
		{"Future exp", now.Add(time.Hour).Unix(), 0, nil},
		{"Expired one second ago", now.Add(-time.Second).Unix(), 0, ErrExpiredSignature},
		{"Exactly now", now.Unix(), 0, ErrExpiredSignature},
		{"Exactly at leeway boundary", now.Add(-5 * time.Second).Unix(), 5 * time.Second, ErrExpiredSignature},
		{"Within leeway", now.Add(-4 * time.Second).Unix(), 5 * time.Second, nil},
		{"Beyond leeway plus one", now.Add(5*time.Second + time.Second).Unix(), 5 * time.Second, nil},
		{"Leeway minus one still future", now.Add(5*time.Second - time.Second).Unix(), 5 * time.Second, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := NewClaimSet(map[string]any{"exp": tt.exp})
			err := claims.Validate(ValidationOptions{Leeway: tt.leeway, Clock: testClock(now)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateNotBefore(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	tests := []struct {
		name    string
		nbf     any
		leeway  time.Duration
		wantErr error
	}{
		{"Already valid", now.Add(-time.Minute).Unix(), 0, nil},
		{"Valid exactly now", now.Unix(), 0, nil},
		{"Not yet valid", now.Add(time.Minute).Unix(), 0, ErrImmatureSignature},
		{"Within leeway", now.Add(4 * time.Second).Unix(), 5 * time.Second, nil},
		{"Beyond leeway", now.Add(6 * time.Second).Unix(), 5 * time.Second, ErrImmatureSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := NewClaimSet(map[string]any{"nbf": tt.nbf})
			err := claims.Validate(ValidationOptions{Leeway: tt.leeway, Clock: testClock(now)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateIssuedAt(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	tests := []struct {
		name    string
		iat     any
		leeway  time.Duration
		wantErr error
	}{
		{"Issued in the past", now.Add(-time.Minute).Unix(), 0, nil},
		{"Issued in the future", now.Add(time.Minute).Unix(), 0, ErrInvalidIssuedAt},
		{"Future within leeway", now.Add(3 * time.Second).Unix(), 5 * time.Second, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := NewClaimSet(map[string]any{"iat": tt.iat})
			err := claims.Validate(ValidationOptions{Leeway: tt.leeway, Clock: testClock(now)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateUnparsableTimestamps(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	tests := []struct {
		name    string
		claims  map[string]any
		message string
	}{
		{"Boolean exp", map[string]any{"exp": true}, "Expiration claim (exp) must be a number"},
		{"Object exp", map[string]any{"exp": map[string]any{}}, "Expiration claim (exp) must be a number"},
		{"Textual exp", map[string]any{"exp": "soon"}, "Expiration claim (exp) must be a number"},
		{"Boolean nbf", map[string]any{"nbf": true}, "Not before claim (nbf) must be a number"},
		{"Array iat", map[string]any{"iat": []any{1}}, "Issued at claim (iat) must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewClaimSet(tt.claims).Validate(ValidationOptions{Clock: testClock(now)})
			wantDecodeError(t, err, tt.message)
		})
	}
}

func TestValidateExtremeTimestamps(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	// JSON numbers can exceed the int64 second range; such values clamp to
	// the far past or far future instead of wrapping.
	tests := []struct {
		name    string
		claims  map[string]any
		wantErr error
		message string
	}{
		{"Huge future exp passes", map[string]any{"exp": 1e19}, nil, ""},
		{"Huge future nbf is immature", map[string]any{"nbf": 1e19}, ErrImmatureSignature, ""},
		{"Huge future iat is invalid", map[string]any{"iat": 1e19}, ErrInvalidIssuedAt, ""},
		{"Huge negative exp is expired", map[string]any{"exp": -1e19}, ErrExpiredSignature, ""},
		{"Huge negative nbf passes", map[string]any{"nbf": -1e19}, nil, ""},
		{"Huge numeric string exp passes", map[string]any{"exp": "10000000000000000000"}, nil, ""},
		{"NaN string exp is unparsable", map[string]any{"exp": "NaN"}, nil, "Expiration claim (exp) must be a number"},
		{"NaN string nbf is unparsable", map[string]any{"nbf": "nan"}, nil, "Not before claim (nbf) must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewClaimSet(tt.claims).Validate(ValidationOptions{Clock: testClock(now)})
			if tt.message != "" {
				wantDecodeError(t, err, tt.message)
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateNumericStringTimestamps(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	// Numeric strings parse as decimal timestamps.
	claims := NewClaimSet(map[string]any{
		"exp": "1700003600",
		"nbf": "1699996400.5",
		"iat": json.Number("1699996400"),
	})
	if err := claims.Validate(ValidationOptions{Clock: testClock(now)}); err != nil {
		t.Errorf("Numeric string timestamps should validate: %v", err)
	}

	expired := NewClaimSet(map[string]any{"exp": "1600000000"})
	if err := expired.Validate(ValidationOptions{Clock: testClock(now)}); !errors.Is(err, ErrExpiredSignature) {
		t.Errorf("Expected ErrExpiredSignature, got %v", err)
	}
}

func TestValidateAudience(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	tests := []struct {
		name     string
		aud      any
		audience string
		wantErr  error
	}{
		{"Array contains audience", []any{"a", "b"}, "b", nil},
		{"Array missing audience", []any{"a", "b"}, "c", ErrInvalidAudience},
		{"String matches", "a", "a", nil},
		{"String mismatch", "a", "b", ErrInvalidAudience},
		{"Non-string aud", 42.0, "a", ErrInvalidAudience},
		{"Array with non-string match", []any{1.0, "a"}, "a", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := NewClaimSet(map[string]any{"aud": tt.aud})
			err := claims.Validate(ValidationOptions{Audience: tt.audience, Clock: testClock(now)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateIssuer(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	tests := []struct {
		name    string
		iss     any
		issuer  string
		wantErr error
	}{
		{"Issuer matches", "issuer.example", "issuer.example", nil},
		{"Issuer mismatch", "issuer.example", "other", ErrInvalidIssuer},
		{"Non-string iss", 42.0, "issuer.example", ErrInvalidIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := NewClaimSet(map[string]any{"iss": tt.iss})
			err := claims.Validate(ValidationOptions{Issuer: tt.issuer, Clock: testClock(now)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateAbsentClaims(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	// Absent claims are never validated, even when the caller asks for an
	// audience or issuer.
	claims := NewClaimSet(map[string]any{"sub": "user123"})
	err := claims.Validate(ValidationOptions{
		Audience: "a",
		Issuer:   "issuer.example",
		Leeway:   time.Second,
		Clock:    testClock(now),
	})
	if err != nil {
		t.Errorf("Validation of absent claims should pass, got %v", err)
	}
}

func TestValidateCheckOrder(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	// exp is checked before nbf, aud and iss; the first failing check wins.
	claims := NewClaimSet(map[string]any{
		"exp": now.Add(-time.Hour).Unix(),
		"nbf": now.Add(time.Hour).Unix(),
		"aud": "other",
		"iss": "other",
	})
	err := claims.Validate(ValidationOptions{Audience: "a", Issuer: "b", Clock: testClock(now)})
	if !errors.Is(err, ErrExpiredSignature) {
		t.Errorf("Expected ErrExpiredSignature to win, got %v", err)
	}
}

// ============================================================================
// CLAIM ACCESSOR TESTS
// ============================================================================

func TestClaimAccessors(t *testing.T) {
	claims := NewClaimSet(map[string]any{
		"iss":    "issuer.example",
		"admin":  true,
		"count":  float64(3),
		"exp":    float64(1700000000),
		"aud":    []any{"a", "b"},
		"single": "only",
	})

	if v, ok := claims.String("iss"); !ok || v != "issuer.example" {
		t.Errorf("String(iss) = %q, %v", v, ok)
	}
	if v, ok := claims.Bool("admin"); !ok || !v {
		t.Errorf("Bool(admin) = %v, %v", v, ok)
	}
	if v, ok := claims.Number("count"); !ok || v != 3 {
		t.Errorf("Number(count) = %v, %v", v, ok)
	}
	if v, ok := claims.Time("exp"); !ok || !v.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("Time(exp) = %v, %v", v, ok)
	}
	if v, ok := claims.Strings("aud"); !ok || !reflect.DeepEqual(v, []string{"a", "b"}) {
		t.Errorf("Strings(aud) = %v, %v", v, ok)
	}
	if v, ok := claims.Strings("single"); !ok || !reflect.DeepEqual(v, []string{"only"}) {
		t.Errorf("Strings(single) = %v, %v", v, ok)
	}
	if _, ok := claims.String("missing"); ok {
		t.Error("String(missing) should report absence")
	}
	if _, ok := claims.Strings("admin"); ok {
		t.Error("Strings(admin) should fail for a bool claim")
	}
	if claims.Len() != 6 {
		t.Errorf("Len() = %d, want 6", claims.Len())
	}
}

func TestClaimSetCopies(t *testing.T) {
	source := map[string]any{"sub": "user123"}
	claims := NewClaimSet(source)

	source["sub"] = "mutated"
	if v, _ := claims.String("sub"); v != "user123" {
		t.Error("NewClaimSet should copy the source mapping")
	}

	snapshot := claims.Claims()
	snapshot["sub"] = "mutated"
	if v, _ := claims.String("sub"); v != "user123" {
		t.Error("Claims() should return a copy")
	}
}
