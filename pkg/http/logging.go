package http

import (
	"net/http"

	"github.com/parkplatztransform/parkapi/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths,
		healthPath,
	)

	isExcluded := func(path string) bool {
		for _, excludedPath := range excludedPaths {
			if excludedPath == path {
				return true
			}
		}
		return false
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcluded(r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			fieldsLogger := logger.With(log.Fields{
				"routeName":    meta.RouteName,
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			})
			if meta.Panic != nil {
				fieldsLogger.With(log.Fields{
					"panic":      meta.Panic.Message,
					"stacktrace": string(meta.Panic.Stacktrace),
				}).Log(r.Context(), errorLevel, "request handled with panic")
				return
			}
			if meta.Error != nil {
				fieldsLogger = fieldsLogger.WithError(meta.Error)
			}
			if meta.Code >= http.StatusInternalServerError {
				fieldsLogger.Log(r.Context(), errorLevel, "request handled with internal error")
				return
			}
			fieldsLogger.Log(r.Context(), infoLevel, "request handled")
		})
	})
}
