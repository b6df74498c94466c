package webauth

import (
	"net/http"

	"github.com/thisisthemurph/webauth/pkg/duration"
)

// CookieMaxAge converts a compact lifetime string into the MaxAge value for
// a session cookie. The no-expiry sentinels yield 0, which net/http treats
// as "no Max-Age attribute", producing a cookie scoped to the browser
// session. Any other valid lifetime is returned in whole seconds.
func CookieMaxAge(expiresIn string) (int, error) {
	d, err := duration.Parse(expiresIn)
	if err != nil {
		return 0, err
	}
	if !d.Valid {
		return 0, nil
	}
	return d.Seconds(), nil
}

// NewSessionCookie builds an HTTP cookie carrying a session token value.
//
// The max-age is derived from expiresIn. A cookie set without a max-age is
// scoped to the browser session and disappears on restart, logging the user
// out while their token is still valid, so every login or callback response
// cookie should be built through here.
func NewSessionCookie(name, value, expiresIn string) (*http.Cookie, error) {
	d, err := duration.Parse(expiresIn)
	if err != nil {
		return nil, err
	}
	return sessionCookie(name, value, d), nil
}

func sessionCookie(name, value string, expiresIn duration.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if expiresIn.Valid {
		cookie.MaxAge = expiresIn.Seconds()
	}
	return cookie
}
