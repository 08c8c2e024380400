package auth

import (
	"context"
	"errors"
	"fmt"
)

var ErrPermissionDenied = errors.New("permission denied")

type (
	// Permission decides whether the given authentication may proceed.
	// Returning an error aborts the check without denying.
	Permission[T Principal] func(Authentication[T]) (bool, error)

	PermissionService[T Principal] interface {
		Check(context.Context, Permission[T]) error
	}

	permissionService[T Principal] struct{}
)

func NewPermissionService[T Principal]() PermissionService[T] {
	return permissionService[T]{}
}

func (permissionService[T]) Check(ctx context.Context, permission Permission[T]) error {
	auth, ok := GetAuthentication[T](ctx)
	if !ok {
		return errors.New("authentication not found in context")
	}

	allowed, err := permission(auth)
	if err != nil {
		return fmt.Errorf("check permission: %w", err)
	}
	if !allowed {
		return ErrPermissionDenied
	}

	return nil
}
