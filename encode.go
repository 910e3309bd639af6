package jwt

import (
	"encoding/json"
	"fmt"

	"github.com/laohac8x/JSONWebToken/internal/segment"
)

// Encode serializes the claims, signs them with the algorithm and returns
// the compact token string. Caller-supplied headers are merged in first;
// "typ" defaults to "JWT" without overwriting an existing value, while
// "alg" is always overwritten with the algorithm's canonical name.
//
// Encoding fails only when a caller-supplied value cannot be represented
// as JSON, which is a caller bug, or when the algorithm cannot sign.
func Encode(claims ClaimSet, algorithm Algorithm, headers ...map[string]any) (string, error) {
	header := map[string]any{}
	if len(headers) > 0 {
		for k, v := range headers[0] {
			header[k] = v
		}
	}
	if _, ok := header["typ"]; !ok {
		header["typ"] = "JWT"
	}
	header["alg"] = algorithm.Name()

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}
	payloadJSON, err := json.Marshal(claims.payload())
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	signingInput := segment.Encode(headerJSON) + "." + segment.Encode(payloadJSON)

	signature, err := algorithm.Sign([]byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signingInput + "." + segment.Encode(signature), nil
}
