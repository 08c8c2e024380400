package http

import (
	"errors"
	"net/http"

	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

const (
	unauthorizedDetail     = "Forbidden"
	permissionDeniedDetail = "User does not have appropriate permissions"
	invalidBBoxDetail      = "Bounding box must contain a valid polygon, eg. bbox=XX,XX,XX,XX,XX"
)

type errorDetail struct {
	Detail string `json:"detail"`
}

func setAuthErrorCode(w pkghttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pkgauth.ErrUnauthenticated):
		w.SetStatusCode(http.StatusUnauthorized).
			SetJSONBody(errorDetail{Detail: unauthorizedDetail})
	case errors.Is(err, pkgauth.ErrPermissionDenied):
		w.SetStatusCode(http.StatusForbidden).
			SetJSONBody(errorDetail{Detail: permissionDeniedDetail})
	}
}
