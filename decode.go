package jwt

import (
	"strings"

	"github.com/laohac8x/JSONWebToken/internal/segment"
)

// parsedToken carries the outcome of the structural parse steps shared by
// verified and unverified decoding. signingInput is the first two encoded
// segments joined by '.', exactly the bytes covered by the signature; the
// segments are never re-encoded.
type parsedToken struct {
	header       Header
	claims       ClaimSet
	signingInput []byte
	signature    []byte
}

// Decode splits, parses and verifies a compact token against the accepted
// algorithms, returning its claim set. The pipeline is a single fail-fast
// pass: segment count, header base64 and JSON shape, payload base64 and
// JSON shape, signature base64, then claim validation and signature
// verification.
//
// The accepted algorithms carry their own key material. An algorithm is
// considered only when its Name equals the token's "alg" header, and the
// token verifies when at least one such algorithm accepts the signature.
// ErrInvalidAlgorithm covers both a name with no match and a failed
// signature; the two are deliberately not distinguished.
func Decode(token string, algorithms []Algorithm, opts ...DecodeOptions) (ClaimSet, error) {
	var o DecodeOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	parsed, err := parseToken(token)
	if err != nil {
		return ClaimSet{}, err
	}

	if o.SkipVerification {
		return parsed.claims, nil
	}

	err = parsed.claims.Validate(ValidationOptions{
		Audience: o.Audience,
		Issuer:   o.Issuer,
		Leeway:   o.Leeway,
		Clock:    o.Clock,
	})
	if err != nil {
		return ClaimSet{}, err
	}

	rawAlg, present := parsed.header["alg"]
	if !present {
		return ClaimSet{}, newDecodeError("Missing Algorithm")
	}
	// A present but non-string alg matches no accepted algorithm name and
	// falls through to ErrInvalidAlgorithm.
	alg, _ := rawAlg.(string)

	for _, candidate := range algorithms {
		if candidate.Name() != alg {
			continue
		}
		if candidate.Verify(parsed.signingInput, parsed.signature) {
			return parsed.claims, nil
		}
	}
	return ClaimSet{}, ErrInvalidAlgorithm
}

// DecodeUnverified parses a token without validating claims or verifying
// the signature, exposing the header alongside the claims. Callers assume
// responsibility for trusting the result.
func DecodeUnverified(token string) (Header, ClaimSet, error) {
	parsed, err := parseToken(token)
	if err != nil {
		return nil, ClaimSet{}, err
	}
	return parsed.header, parsed.claims, nil
}

func parseToken(token string) (parsedToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return parsedToken{}, newDecodeError("Not enough segments")
	}
	headerSegment, payloadSegment, signatureSegment := parts[0], parts[1], parts[2]

	headerBytes, err := segment.Decode(headerSegment)
	if err != nil {
		return parsedToken{}, newDecodeError("Header is not correctly encoded as base64")
	}
	headerObj, err := segment.ParseObject(headerBytes)
	if err != nil {
		return parsedToken{}, newDecodeError("Invalid header")
	}

	payloadBytes, err := segment.Decode(payloadSegment)
	if err != nil {
		return parsedToken{}, newDecodeError("Payload is not correctly encoded as base64")
	}
	payloadObj, err := segment.ParseObject(payloadBytes)
	if err != nil {
		return parsedToken{}, newDecodeError("Invalid payload")
	}

	signature, err := segment.Decode(signatureSegment)
	if err != nil {
		return parsedToken{}, newDecodeError("Signature is not correctly encoded as base64")
	}

	return parsedToken{
		header:       Header(headerObj),
		claims:       ClaimSet{claims: payloadObj},
		signingInput: []byte(headerSegment + "." + payloadSegment),
		signature:    signature,
	}, nil
}
