package auth

import (
	"context"
	"errors"
)

type authenticationContextKey struct{}

// WithAuthentication stores the authentication type-erased, so middleware
// and application code may use different principal type parameters.
func WithAuthentication[T Principal](ctx context.Context, auth Authentication[T]) context.Context {
	var principal *Principal
	if p := auth.Principal(); p != nil {
		erased := Principal(*p)
		principal = &erased
	}

	return context.WithValue(ctx, authenticationContextKey{}, Auth[Principal]{principal})
}

func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	stored, ok := ctx.Value(authenticationContextKey{}).(Authentication[Principal])
	if !ok {
		return nil, false
	}

	var principal *T
	if p := stored.Principal(); p != nil {
		concrete, ok := (*p).(T)
		if !ok {
			return nil, false
		}
		principal = &concrete
	}

	return Auth[T]{principal}, true
}

func IsAuthenticated(ctx context.Context) (bool, error) {
	stored, ok := ctx.Value(authenticationContextKey{}).(Authentication[Principal])
	if !ok {
		return false, errors.New("authentication not found in context")
	}

	return stored.IsAuthenticated(), nil
}
