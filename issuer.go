package webauth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/thisisthemurph/webauth/claims"
	"github.com/thisisthemurph/webauth/internal/auth"
	"github.com/thisisthemurph/webauth/pkg/duration"
)

// IssuerConfig configures a token Issuer.
type IssuerConfig struct {
	// SecretKey is the key used to sign issued tokens. Required.
	SecretKey string

	// BaseURL is the public URL of the service issuing tokens.
	// It is used verbatim as both the iss and aud claims and may be empty.
	BaseURL string

	// ExpiresIn is the default session token lifetime as a compact duration
	// string, e.g. "4w" or "1h30m". The sentinel values "-1" and "0" mean
	// sessions do not expire. Optional; an empty string behaves like "-1".
	ExpiresIn string
}

// Issuer creates and parses signed session tokens.
// Multiple independently configured Issuers may exist within one process.
type Issuer struct {
	config    IssuerConfig
	expiresIn duration.Duration

	now        func() time.Time
	newTokenID func() string
}

// NewIssuer creates an Issuer with the provided configuration.
func NewIssuer(config IssuerConfig) (*Issuer, error) {
	if config.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}

	expiresIn := duration.NoExpiry()
	if config.ExpiresIn != "" {
		var err error
		expiresIn, err = duration.Parse(config.ExpiresIn)
		if err != nil {
			return nil, fmt.Errorf("invalid ExpiresIn: %w", err)
		}
	}

	return &Issuer{
		config:     config,
		expiresIn:  expiresIn,
		now:        time.Now,
		newTokenID: uuid.NewString,
	}, nil
}

// CreateToken issues a signed token carrying the payload data.
// The token has no expiry claim; use CreateTokenWithExpiry or
// CreateSessionToken for tokens that expire.
func (i *Issuer) CreateToken(data map[string]any) (string, error) {
	return i.signToken(data, nil)
}

// CreateTokenWithExpiry issues a signed token that expires expiresIn from now.
func (i *Issuer) CreateTokenWithExpiry(data map[string]any, expiresIn time.Duration) (string, error) {
	return i.signToken(data, &expiresIn)
}

// CreateSessionToken issues a signed token using the configured default
// lifetime. When the configuration requests no expiry, the token carries no
// expiry claim and never expires.
func (i *Issuer) CreateSessionToken(data map[string]any) (string, error) {
	if !i.expiresIn.Valid {
		return i.signToken(data, nil)
	}
	return i.signToken(data, &i.expiresIn.Duration)
}

func (i *Issuer) signToken(data map[string]any, expiresIn *time.Duration) (string, error) {
	return auth.NewSignedJWT(data, auth.SignParams{
		Secret:    i.config.SecretKey,
		BaseURL:   i.config.BaseURL,
		IssuedAt:  i.now(),
		TokenID:   i.newTokenID(),
		ExpiresIn: expiresIn,
	})
}

// ParseToken verifies the token signature and expiry and returns its claims.
func (i *Issuer) ParseToken(token string) (*claims.Claims, error) {
	return auth.ParseJWT(token, i.config.SecretKey)
}

// SessionCookie builds the response cookie carrying an issued session token.
// The cookie max-age matches the configured token lifetime so the session
// survives browser restarts for as long as the token remains valid.
func (i *Issuer) SessionCookie(name, token string) *http.Cookie {
	return sessionCookie(name, token, i.expiresIn)
}
