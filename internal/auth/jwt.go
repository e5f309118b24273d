package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

var now = time.Now

// IsValid reports whether the token is a JWT whose exp claim lies strictly in
// the future. It never returns an error: malformed, absent, or expired tokens
// are all just false.
func IsValid(token string) bool {
	if token == "" {
		return false
	}

	segments := strings.Split(token, ".")
	if len(segments) < 2 {
		return false
	}

	payload, err := decodeSegment(segments[1])
	if err != nil {
		return false
	}

	var claims struct {
		Exp float64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return false
	}
	if claims.Exp == 0 {
		return false
	}

	return claims.Exp > float64(now().Unix())
}

// decodeSegment decodes a JWT segment, tolerating both padded and unpadded
// base64url.
func decodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(segment, "="))
}
