package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerWrapper_WritesDetailBodyOnHandledError(t *testing.T) {
	handler := func(w ResponseWriter, _ *http.Request) error {
		w.SetStatusCode(http.StatusForbidden).
			SetJSONBody(map[string]string{"detail": "operation is not allowed"})
		return errors.New("operation is not allowed")
	}

	recorder := httptest.NewRecorder()
	httpHandlerWrapper(handler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"detail": "operation is not allowed"}`, recorder.Body.String())
}

func TestHandlerWrapper_WritesBareStatusOnUnhandledError(t *testing.T) {
	handler := func(w ResponseWriter, _ *http.Request) error {
		w.SetJSONBody(map[string]string{"value": "must not leak"})
		return errors.New("unexpected")
	}

	recorder := httptest.NewRecorder()
	httpHandlerWrapper(handler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
