//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Store=Store"
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
)

var ErrSessionNotFound = errors.New("session not found")

type (
	// Identity is the user snapshot stored for the lifetime of a session.
	Identity struct {
		UserID          uuid.UUID            `json:"id"`
		Email           string               `json:"email"`
		PermissionLevel auth.PermissionLevel `json:"permission_level"`
	}

	Store interface {
		Create(ctx context.Context, identity Identity) (string, error)
		Get(ctx context.Context, sessionID string) (*Identity, error)
		Delete(ctx context.Context, sessionID string) error
	}
)
