package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth"
	"github.com/parkplatztransform/parkapi/internal/user/app/session"
	usertask "github.com/parkplatztransform/parkapi/internal/user/app/task"
	"github.com/parkplatztransform/parkapi/internal/user/domain"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
	"github.com/parkplatztransform/parkapi/pkg/persistence"
	"github.com/parkplatztransform/parkapi/pkg/task"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrUnauthenticated = pkgauth.ErrUnauthenticated
)

const updateUsersLockName = "update_users"

type (
	User interface {
		RequestMagicLink(ctx context.Context, email string) error
		VerifyMagicLink(ctx context.Context, token, email string) (sessionID string, err error)
		GetCurrent(ctx context.Context) (*session.Identity, error)
		Logout(ctx context.Context, sessionID string) error
	}

	userService struct {
		oneTimeAuth onetimeauth.Service
		sessions    session.Store
		userRepo    domain.UserRepository
		scheduler   task.Scheduler
		transaction persistence.Transaction
	}
)

func NewUser(
	oneTimeAuth onetimeauth.Service,
	sessions session.Store,
	userRepo domain.UserRepository,
	scheduler task.Scheduler,
	transaction persistence.Transaction,
) User {
	return &userService{
		oneTimeAuth: oneTimeAuth,
		sessions:    sessions,
		userRepo:    userRepo,
		scheduler:   scheduler,
		transaction: transaction,
	}
}

func (s *userService) RequestMagicLink(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	token, err := s.oneTimeAuth.GenerateToken(email)
	if err != nil {
		return fmt.Errorf("generate login token: %w", err)
	}

	err = s.scheduler.Schedule(ctx, time.Now(), usertask.SendVerificationEmail{
		TaskID: uuid.New(),
		Email:  email,
		Token:  token,
	})
	if err != nil {
		return fmt.Errorf("schedule verification email: %w", err)
	}

	return nil
}

func (s *userService) VerifyMagicLink(ctx context.Context, token, email string) (string, error) {
	claims, err := s.oneTimeAuth.ValidateToken(ctx, token, email)
	if err != nil {
		return "", err
	}

	getOrCreateUserImpl := func(ctx context.Context) (*domain.User, error) {
		user, err := s.userRepo.FindByEmail(ctx, claims.Email)
		if errors.Is(err, domain.ErrUserNotFound) {
			user = &domain.User{
				ID:              s.userRepo.NextID(),
				Email:           claims.Email,
				PermissionLevel: auth.PermissionLevelGuest,
				CreatedAt:       time.Now(),
			}
			if err = s.userRepo.Store(ctx, user); err != nil {
				return nil, fmt.Errorf("store user: %w", err)
			}
			return user, nil
		}
		if err != nil {
			return nil, fmt.Errorf("find user by email: %w", err)
		}

		return user, nil
	}

	user, err := persistence.WithinTransactionWithResult(ctx, s.transaction, getOrCreateUserImpl, updateUsersLockName)
	if err != nil {
		return "", err
	}

	sessionID, err := s.sessions.Create(ctx, session.Identity{
		UserID:          user.ID.UUID,
		Email:           user.Email,
		PermissionLevel: user.PermissionLevel,
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return sessionID, nil
}

func (s *userService) GetCurrent(ctx context.Context) (*session.Identity, error) {
	authentication, ok := pkgauth.GetAuthentication[auth.Principal](ctx)
	if !ok || !authentication.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	principal := *authentication.Principal()
	return &session.Identity{
		UserID:          principal.UserID,
		Email:           principal.Email,
		PermissionLevel: principal.PermissionLevel,
	}, nil
}

func (s *userService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return s.sessions.Delete(ctx, sessionID)
}
