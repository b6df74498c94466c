package webauth

import "errors"

// ErrMissingSecretKey indicates that an Issuer was constructed without a signing key.
var ErrMissingSecretKey = errors.New("SecretKey field must be set in IssuerConfig")
