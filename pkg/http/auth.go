package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/parkplatztransform/parkapi/pkg/auth"
)

type AuthTokenProvider func(*http.Request) (auth.Token, bool)

func WithAuth[T auth.Principal](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				r = setHandlerAuthentication(r, auth.Auth[T]{})
				handler.ServeHTTP(w, r)
				return
			}

			authData, err := provider.Authenticate(r.Context(), token)
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				r = setHandlerAuthentication(r, auth.Auth[T]{})
				handler.ServeHTTP(w, r)
				return
			case err != nil:
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			r = setHandlerAuthentication(r, authData)
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement() ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			if !isAuthenticated {
				writeHandlerResult(r.Context(), w, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func CookieTokenProvider(cookieName string, tokenImpl func(value string) auth.Token) AuthTokenProvider {
	return func(r *http.Request) (auth.Token, bool) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return nil, false
		}
		return tokenImpl(cookie.Value), true
	}
}

func setHandlerAuthentication[T auth.Principal](r *http.Request, a auth.Authentication[T]) *http.Request {
	return r.WithContext(auth.WithAuthentication(r.Context(), a))
}

func writeHandlerResult(ctx context.Context, w http.ResponseWriter, httpCode int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	w.WriteHeader(httpCode)
}
