package claims

import "time"

// Claims represents the decoded contents of a session token.
//
// The registered JWT claims are normalized onto plain fields. Everything
// the caller originally placed in the token payload is preserved verbatim
// in Data, including the id field the subject is derived from.
type Claims struct {
	// Subject is the identity the token represents, derived from the id
	// field of the payload when the token was issued.
	// It is empty when the payload had no id.
	Subject string

	// Issuer is the base URL of the service that created the token.
	Issuer string

	// Audience is the base URL of the service the token is intended for.
	// It always matches Issuer for tokens created by this library.
	Audience string

	// IssuedAt is the time the token was created.
	IssuedAt time.Time

	// ExpiresAt is the time the token stops being valid.
	// It is nil for tokens issued without an expiry.
	ExpiresAt *time.Time

	// TokenID is the unique identifier (jti) generated for the token.
	TokenID string

	// Data contains the original payload fields provided when the token was issued.
	Data map[string]any
}

// UserID returns the id field from the original token payload.
// A bool is also returned indicating whether an id was present.
func (c *Claims) UserID() (string, bool) {
	if c.Data == nil {
		return "", false
	}
	id, ok := c.Data["id"].(string)
	return id, ok
}
