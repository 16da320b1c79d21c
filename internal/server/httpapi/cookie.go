package httpapi

import (
	"net/http"
	"time"

	"github.com/avelichko/careernet/internal/server/config"
)

const sessionCookieName = "jwt-careernet"

// CookiePolicy fixes the attributes of the session cookie. Secure is set
// only in production so local development over plain HTTP keeps working.
type CookiePolicy struct {
	HTTPOnly bool
	SameSite http.SameSite
	Secure   bool
	MaxAge   int
}

func NewCookiePolicy(cfg *config.Config, validity time.Duration) CookiePolicy {
	return CookiePolicy{
		HTTPOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   cfg.Environment == config.EnvProduction,
		MaxAge:   int(validity.Seconds()),
	}
}

// Set writes the session cookie carrying the token.
func (p CookiePolicy) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: p.HTTPOnly,
		SameSite: p.SameSite,
		Secure:   p.Secure,
		MaxAge:   p.MaxAge,
	})
}

// Clear expires the session cookie immediately.
func (p CookiePolicy) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: p.HTTPOnly,
		SameSite: p.SameSite,
		Secure:   p.Secure,
		MaxAge:   -1,
	})
}
