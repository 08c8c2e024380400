package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
)

func TestSetAuthErrorCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectCode   int
		expectDetail string
	}{
		{
			name:         "permission_denied",
			err:          fmt.Errorf("delete segment: %w", pkgauth.ErrPermissionDenied),
			expectCode:   http.StatusForbidden,
			expectDetail: permissionDeniedDetail,
		},
		{
			name:         "unauthenticated",
			err:          pkgauth.ErrUnauthenticated,
			expectCode:   http.StatusUnauthorized,
			expectDetail: unauthorizedDetail,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := &captureResponseWriter{}

			setAuthErrorCode(w, tc.err)

			assert.Equal(t, tc.expectCode, w.statusCode)
			assert.Equal(t, errorDetail{Detail: tc.expectDetail}, w.jsonBody)
		})
	}
}
