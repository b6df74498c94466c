package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thisisthemurph/webauth/claims"
)

var registeredClaimNames = map[string]struct{}{
	"sub": {},
	"iss": {},
	"aud": {},
	"iat": {},
	"exp": {},
	"jti": {},
}

// newClaims normalizes a raw claim map into the public claims type.
// Payload fields the caller supplied at issue time, including id, are kept
// verbatim in Data; the registered claims are mapped onto typed fields.
func newClaims(mc jwt.MapClaims) *claims.Claims {
	c := &claims.Claims{}

	if sub, ok := mc["sub"].(string); ok {
		c.Subject = sub
	}
	if iss, ok := mc["iss"].(string); ok {
		c.Issuer = iss
	}
	if aud, ok := mc["aud"].(string); ok {
		c.Audience = aud
	}
	if jti, ok := mc["jti"].(string); ok {
		c.TokenID = jti
	}
	if iat, ok := mc["iat"].(float64); ok {
		c.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mc["exp"].(float64); ok {
		expiresAt := time.Unix(int64(exp), 0)
		c.ExpiresAt = &expiresAt
	}

	data := make(map[string]any)
	for k, v := range mc {
		if _, registered := registeredClaimNames[k]; registered {
			continue
		}
		data[k] = v
	}
	if len(data) > 0 {
		c.Data = data
	}

	return c
}
