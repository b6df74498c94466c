package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/thisisthemurph/webauth"
	"github.com/thisisthemurph/webauth/claims"
)

type contextKey string

const claimsKey contextKey = "webauth:claims"

type Config struct {
	// CookieName is the name of the cookie carrying the session token.
	CookieName string
}

type Middleware struct {
	Config Config
	Issuer *webauth.Issuer
}

// New creates a new Middleware struct for instantiating auth middleware
// that has access to the issuer and configuration values.
func New(c Config, issuer *webauth.Issuer) (*Middleware, error) {
	if c.CookieName == "" {
		return nil, errors.New("CookieName field must be set in Config")
	}
	if issuer == nil {
		return nil, errors.New("issuer must not be nil")
	}

	return &Middleware{
		Config: c,
		Issuer: issuer,
	}, nil
}

// WithClaimsInContextMw is middleware that parses the session token and adds
// the claims to the context. The token is read from the Authorization bearer
// header first and the session cookie second. If no token is available, or
// the token does not verify, the middleware continues as normal.
func (mw *Middleware) WithClaimsInContextMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token := mw.tokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		c, err := mw.Issuer.ParseToken(token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireClaimsMw rejects requests that have no claims on the context with a
// 401 response. It must be wrapped by WithClaimsInContextMw.
func (mw *Middleware) RequireClaimsMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ClaimsFromContext(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest returns the session token from the request, preferring
// the Authorization bearer header over the session cookie.
func (mw *Middleware) tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return token
		}
	}

	if cookie, err := r.Cookie(mw.Config.CookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// ClaimsFromContext returns any claims added to the HTTP context by the
// WithClaimsInContextMw middleware. A bool is also returned indicating if
// the claims were present. If true, the user associated with the claims is
// authenticated, otherwise not.
func ClaimsFromContext(ctx context.Context) (*claims.Claims, bool) {
	if v := ctx.Value(claimsKey); v != nil {
		if c, ok := v.(*claims.Claims); ok {
			return c, true
		}
	}
	return nil, false
}
