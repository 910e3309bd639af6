// Package segment implements the strict base64url and JSON codec for the
// three segments of a compact token. Segments use the raw (unpadded)
// URL-safe alphabet; padding and any other character are rejected rather
// than tolerated, since segment decoding is the first checkpoint for
// adversarial input.
package segment

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	maxSegmentLength = 4096
	maxDecodedLength = 2048
)

var (
	ErrTooLarge        = fmt.Errorf("segment too large: maximum %d characters allowed", maxSegmentLength)
	ErrDecodedTooLarge = fmt.Errorf("decoded segment too large: maximum %d bytes allowed", maxDecodedLength)
	ErrInvalidEncoding = errors.New("segment is not valid raw base64url")
	ErrNotObject       = errors.New("segment is not a JSON object")
)

// Encode encodes bytes as raw (unpadded) base64url.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode decodes a raw base64url segment. An empty segment decodes to
// empty bytes; the signature segment of an unsigned token is empty.
func Decode(seg string) ([]byte, error) {
	if len(seg) > maxSegmentLength {
		return nil, ErrTooLarge
	}
	if !validBase64URL(seg) {
		return nil, ErrInvalidEncoding
	}

	bufLen := base64.RawURLEncoding.DecodedLen(len(seg))
	if bufLen > maxDecodedLength {
		return nil, ErrDecodedTooLarge
	}

	buf := make([]byte, bufLen)
	n, err := base64.RawURLEncoding.Decode(buf, []byte(seg))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return buf[:n], nil
}

// ParseObject unmarshals JSON that must be an object, yielding its
// key-to-value mapping. Arrays, scalars and null are rejected.
func ParseObject(data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNotObject
	}
	return obj, nil
}

func validBase64URL(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-' || c == '_') {
			return false
		}
	}
	return true
}
