package http

import (
	"net/http"
	"time"

	internalauth "github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/pkg/auth"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

const SessionCookieName = "sessionid"

type SessionCookieConfig struct {
	Domain string
	Secure bool
	TTL    time.Duration
}

func (c SessionCookieConfig) New(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   c.Secure,
	}
}

func (c SessionCookieConfig) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   c.Secure,
	}
}

func SessionTokenProvider() pkghttp.AuthTokenProvider {
	return pkghttp.CookieTokenProvider(SessionCookieName, func(value string) auth.Token {
		return internalauth.SessionIDToken{SessionID: value}
	})
}
