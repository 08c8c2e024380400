package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	pkgstrings "github.com/parkplatztransform/parkapi/pkg/strings"
)

var ErrParsingError = errors.New("failed to parse request")

type RequestDataProvider[T any] func(*http.Request) (T, error)

func ParseRequest[T any](r *http.Request, provider RequestDataProvider[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	result, err := provider(r)
	if err != nil {
		return result, fmt.Errorf("%w: %s", ErrParsingError, err.Error())
	}
	return result, nil
}

func ParseRequestOptional[T any](r *http.Request, provider RequestDataProvider[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := provider(r)
	if err != nil {
		return nil
	}

	return &result
}

func PathParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		params := mux.Vars(r)
		paramValue, ok := params[param]
		if !ok {
			var result T
			return result, fmt.Errorf("path parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](paramValue)
	}
}

func QueryParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("query parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](value)
	}
}

func QueryParameters[T any](param string) RequestDataProvider[[]T] {
	return func(r *http.Request) ([]T, error) {
		values, ok := r.URL.Query()[param]
		if !ok {
			return nil, fmt.Errorf("query parameter %s not found", param)
		}
		result := make([]T, 0, len(values))
		for _, value := range values {
			concreteValue, err := pkgstrings.ParseTypedValue[T](value)
			if err != nil {
				return nil, err
			}
			result = append(result, concreteValue)
		}
		return result, nil
	}
}

func Header[T any](key string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		header := r.Header.Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("header with key %s not found", key)
		}
		return pkgstrings.ParseTypedValue[T](header)
	}
}

func Cookie(name string) RequestDataProvider[*http.Cookie] {
	return func(r *http.Request) (*http.Cookie, error) {
		cookie, err := r.Cookie(name)
		if err != nil {
			return nil, fmt.Errorf("cookie with name %s not found", name)
		}
		return cookie, nil
	}
}

func CookieValue[T any](name string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil {
			var result T
			return result, fmt.Errorf("cookie with name %s not found", name)
		}
		return pkgstrings.ParseTypedValue[T](cookie.Value)
	}
}

func JSONBody[T any]() RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return body, fmt.Errorf("decode json body: %w", err)
		}
		return body, nil
	}
}
