//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
)

const Name = "user"

var ErrUserNotFound = errors.New("user not found")

type (
	User struct {
		ID              UserID
		Email           string
		PermissionLevel auth.PermissionLevel
		CreatedAt       time.Time
	}

	UserRepository interface {
		NextID() UserID
		Store(context.Context, *User) error
		FindByID(context.Context, UserID) (*User, error)
		FindByEmail(ctx context.Context, email string) (*User, error)
	}

	UserID struct{ uuid.UUID }
)
