package auth

import (
	"context"
	"errors"
	"fmt"

	internalauth "github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/user/app/session"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
)

type sessionProvider struct {
	sessions session.Store
}

// NewSessionProvider authenticates requests by resolving the session cookie
// against the session store.
func NewSessionProvider(sessions session.Store) pkgauth.Provider[internalauth.Principal] {
	return sessionProvider{sessions: sessions}
}

func (p sessionProvider) Authenticate(
	ctx context.Context,
	token pkgauth.Token,
) (pkgauth.Authentication[internalauth.Principal], error) {
	sessionToken, ok := token.(internalauth.SessionIDToken)
	if !ok {
		return nil, fmt.Errorf("unknown token with type %s", token.Type())
	}

	identity, err := p.sessions.Get(ctx, sessionToken.SessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, fmt.Errorf("%w: %s", pkgauth.ErrUnauthenticated, err.Error())
	}
	if err != nil {
		return nil, err
	}

	return pkgauth.Auth[internalauth.Principal]{AuthPrincipal: &internalauth.Principal{
		UserID:          identity.UserID,
		Email:           identity.Email,
		PermissionLevel: identity.PermissionLevel,
	}}, nil
}
