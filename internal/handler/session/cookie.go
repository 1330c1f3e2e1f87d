package session

import (
	"net/http"
	"time"
)

const (
	// CookieName is the anonymous identity cookie shared with the upstream API.
	CookieName = "chatkit_session_id"
	// CookieMaxAge is how long a browser keeps its identity (30 days).
	CookieMaxAge = 30 * 24 * time.Hour
)

// newSessionCookie builds the Set-Cookie value for a freshly minted identity.
func newSessionCookie(userID string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    userID,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

// readSessionCookie returns the identity the browser presented, if any.
func readSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
