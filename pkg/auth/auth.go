// Package auth models request authentication independently of the transport
// that carries the credentials.
package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

type (
	PrincipalType string

	// Principal is an authenticated actor.
	Principal interface {
		Type() PrincipalType
		ID() *string
	}

	// Token is a raw credential extracted from a request, resolved to a
	// principal by a Provider.
	Token interface {
		Type() PrincipalType
	}

	Provider[T Principal] interface {
		Authenticate(context.Context, Token) (Authentication[T], error)
	}

	Authentication[T Principal] interface {
		IsAuthenticated() bool
		Principal() *T
	}
)

// Auth is the Authentication carried through request contexts. A nil
// principal marks an anonymous request.
type Auth[T Principal] struct {
	AuthPrincipal *T
}

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}
