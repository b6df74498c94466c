package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thisisthemurph/webauth/claims"
)

// SignParams carries everything NewSignedJWT needs beyond the payload itself.
type SignParams struct {
	Secret    string
	BaseURL   string
	IssuedAt  time.Time
	TokenID   string
	ExpiresIn *time.Duration
}

// NewSignedJWT builds the session token claim set from the caller's payload
// and signs it with HS256.
//
// The payload fields are copied into the claim set verbatim before the
// registered claims are applied, so a payload key such as "id" survives
// alongside the derived sub claim. A payload without an id produces an
// explicit null subject rather than omitting the claim.
func NewSignedJWT(data map[string]any, p SignParams) (string, error) {
	mapClaims := make(jwt.MapClaims, len(data)+6)
	for k, v := range data {
		mapClaims[k] = v
	}

	var sub any
	if id, ok := data["id"]; ok {
		sub = id
	}

	mapClaims["sub"] = sub
	mapClaims["iss"] = p.BaseURL
	mapClaims["aud"] = p.BaseURL
	mapClaims["iat"] = p.IssuedAt.Unix()
	mapClaims["jti"] = p.TokenID
	if p.ExpiresIn != nil {
		mapClaims["exp"] = p.IssuedAt.Add(*p.ExpiresIn).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(p.Secret))
}

// ParseJWT verifies the token signature and expiry and returns its claims.
// Tokens signed with anything other than HS256 are rejected.
func ParseJWT(jwtToken string, secret string) (*claims.Claims, error) {
	mapClaims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(jwtToken, mapClaims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return newClaims(mapClaims), nil
}
