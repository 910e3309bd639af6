package jwt

// Header represents the JOSE header of a token: a mapping of header
// parameters as parsed from the first token segment. Construction is
// pass-through; no parameter is normalized.
type Header map[string]any

// Algorithm reads the "alg" parameter. It reports false when the parameter
// is absent or not a string.
func (h Header) Algorithm() (string, bool) {
	alg, ok := h["alg"].(string)
	return alg, ok
}

// Type reads the conventional "typ" parameter.
func (h Header) Type() (string, bool) {
	typ, ok := h["typ"].(string)
	return typ, ok
}
