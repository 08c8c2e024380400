package auth

import (
	"github.com/parkplatztransform/parkapi/pkg/auth"
)

const PrincipalTypeUser auth.PrincipalType = "user"

// SessionIDToken carries the opaque session identifier from the session cookie.
type SessionIDToken struct {
	SessionID string
}

func (t SessionIDToken) Type() auth.PrincipalType {
	return PrincipalTypeUser
}
