package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func WithCORSHandler(allowedOrigins ...string) ServerOption {
	isAllowed := func(origin string) bool {
		for _, allowed := range allowedOrigins {
			if allowed == "*" || allowed == origin {
				return true
			}
		}
		return false
	}

	return func(router *mux.Router) {
		router.Use(mux.CORSMethodMiddleware(router))
		router.Use(func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				origin := r.Header.Get("Origin")
				if origin != "" && isAllowed(origin) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				}
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				handler.ServeHTTP(w, r)
			})
		})
	}
}
