package auth

import (
	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/pkg/auth"
)

type PermissionLevel int

const (
	PermissionLevelGuest       PermissionLevel = 0
	PermissionLevelContributor PermissionLevel = 1
)

type Principal struct {
	UserID          uuid.UUID
	Email           string
	PermissionLevel PermissionLevel
}

func (p Principal) Type() auth.PrincipalType {
	return PrincipalTypeUser
}

func (p Principal) ID() *string {
	v := p.UserID.String()
	return &v
}

type PermissionService = auth.PermissionService[Principal]
