package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth"
	onetimeauthmock "github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth/mock"
	"github.com/parkplatztransform/parkapi/internal/user/app/service"
	"github.com/parkplatztransform/parkapi/internal/user/app/session"
	sessionmock "github.com/parkplatztransform/parkapi/internal/user/app/session/mock"
	usertask "github.com/parkplatztransform/parkapi/internal/user/app/task"
	"github.com/parkplatztransform/parkapi/internal/user/domain"
	userdomainmock "github.com/parkplatztransform/parkapi/internal/user/domain/mock"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
	pkgpersistencestub "github.com/parkplatztransform/parkapi/pkg/persistence/stub"
	pkgtask "github.com/parkplatztransform/parkapi/pkg/task"
	pkgtaskmock "github.com/parkplatztransform/parkapi/pkg/task/mock"
)

func TestUserService_RequestMagicLink_Returns(t *testing.T) {
	userEmail := "someone@example.com"
	loginToken := "some-login-token"

	tests := []struct {
		name        string
		email       string
		oneTimeAuth func(ctrl *gomock.Controller) onetimeauth.Service
		scheduler   func(ctrl *gomock.Controller) pkgtask.Scheduler
		expect      func(t *testing.T, err error)
	}{
		{
			name:  "success",
			email: userEmail,
			oneTimeAuth: func(ctrl *gomock.Controller) onetimeauth.Service {
				mock := onetimeauthmock.NewService(ctrl)
				mock.EXPECT().GenerateToken(userEmail).Return(loginToken, nil)
				return mock
			},
			scheduler: func(ctrl *gomock.Controller) pkgtask.Scheduler {
				mock := pkgtaskmock.NewScheduler(ctrl)
				mock.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, tasks ...pkgtask.Task) error {
						require.Len(t, tasks, 1)
						sendTask, ok := tasks[0].(usertask.SendVerificationEmail)
						require.True(t, ok)
						assert.Equal(t, userEmail, sendTask.Email)
						assert.Equal(t, loginToken, sendTask.Token)
						assert.NotEqual(t, uuid.Nil, sendTask.TaskID)
						return nil
					})
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "success_normalizes_email",
			email: "  Someone@Example.COM ",
			oneTimeAuth: func(ctrl *gomock.Controller) onetimeauth.Service {
				mock := onetimeauthmock.NewService(ctrl)
				mock.EXPECT().GenerateToken(userEmail).Return(loginToken, nil)
				return mock
			},
			scheduler: func(ctrl *gomock.Controller) pkgtask.Scheduler {
				mock := pkgtaskmock.NewScheduler(ctrl)
				mock.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "error_when_email_is_invalid",
			email: "not-an-email",
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidEmail)
			},
		},
		{
			name:  "error_when_scheduling_fails",
			email: userEmail,
			oneTimeAuth: func(ctrl *gomock.Controller) onetimeauth.Service {
				mock := onetimeauthmock.NewService(ctrl)
				mock.EXPECT().GenerateToken(userEmail).Return(loginToken, nil)
				return mock
			},
			scheduler: func(ctrl *gomock.Controller) pkgtask.Scheduler {
				mock := pkgtaskmock.NewScheduler(ctrl)
				mock.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			oneTimeAuth := onetimeauth.Service(onetimeauthmock.NewService(ctrl))
			if tc.oneTimeAuth != nil {
				oneTimeAuth = tc.oneTimeAuth(ctrl)
			}
			scheduler := pkgtask.Scheduler(pkgtaskmock.NewScheduler(ctrl))
			if tc.scheduler != nil {
				scheduler = tc.scheduler(ctrl)
			}

			srv := service.NewUser(
				oneTimeAuth,
				sessionmock.NewStore(ctrl),
				userdomainmock.NewUserRepository(ctrl),
				scheduler,
				pkgpersistencestub.NewTransaction(),
			)

			err := srv.RequestMagicLink(context.Background(), tc.email)
			tc.expect(t, err)
		})
	}
}

func TestUserService_VerifyMagicLink_Returns(t *testing.T) {
	userEmail := "someone@example.com"
	loginToken := "some-login-token"
	sessionID := "some-session-id"
	userID := domain.UserID{UUID: uuid.New()}

	existingUser := domain.User{
		ID:              userID,
		Email:           userEmail,
		PermissionLevel: auth.PermissionLevelContributor,
	}

	tests := []struct {
		name         string
		oneTimeAuth  func(ctrl *gomock.Controller) onetimeauth.Service
		userRepo     func(ctrl *gomock.Controller) domain.UserRepository
		sessionStore func(ctrl *gomock.Controller) session.Store
		expect       func(t *testing.T, sessionID string, err error)
	}{
		{
			name: "success_with_existing_user",
			oneTimeAuth: func(ctrl *gomock.Controller) onetimeauth.Service {
				mock := onetimeauthmock.NewService(ctrl)
				mock.EXPECT().ValidateToken(gomock.Any(), loginToken, userEmail).
					Return(onetimeauth.Claims{Email: userEmail, Nonce: "some-nonce"}, nil)
				return mock
			},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), userEmail).Return(&existingUser, nil)
				return mock
			},
			sessionStore: func(ctrl *gomock.Controller) session.Store {
				mock := sessionmock.NewStore(ctrl)
				mock.EXPECT().Create(gomock.Any(), session.Identity{
					UserID:          userID.UUID,
					Email:           userEmail,
					PermissionLevel: auth.PermissionLevelContributor,
				}).Return(sessionID, nil)
				return mock
			},
			expect: func(t *testing.T, result string, err error) {
				require.NoError(t, err)
				assert.Equal(t, sessionID, result)
			},
		},
		{
			name: "success_creates_unknown_user",
			oneTimeAuth: func(ctrl *gomock.Controller) onetimeauth.Service {
				mock := onetimeauthmock.NewService(ctrl)
				mock.EXPECT().ValidateToken(gomock.Any(), loginToken, userEmail).
					Return(onetimeauth.Claims{Email: userEmail, Nonce: "some-nonce"}, nil)
				return mock
			},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), userEmail).Return(nil, domain.ErrUserNotFound)
				mock.EXPECT().NextID().Return(userID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, user *domain.User) {
						assert.Equal(t, userID, user.ID)
						assert.Equal(t, userEmail, user.Email)
						assert.Equal(t, auth.PermissionLevelGuest, user.PermissionLevel)
						assert.False(t, user.CreatedAt.IsZero())
					}).
					Return(nil)
				return mock
			},
			sessionStore: func(ctrl *gomock.Controller) session.Store {
				mock := sessionmock.NewStore(ctrl)
				mock.EXPECT().Create(gomock.Any(), session.Identity{
					UserID:          userID.UUID,
					Email:           userEmail,
					PermissionLevel: auth.PermissionLevelGuest,
				}).Return(sessionID, nil)
				return mock
			},
			expect: func(t *testing.T, result string, err error) {
				require.NoError(t, err)
				assert.Equal(t, sessionID, result)
			},
		},
		{
			name: "error_when_token_is_invalid",
			oneTimeAuth: func(ctrl *gomock.Controller) onetimeauth.Service {
				mock := onetimeauthmock.NewService(ctrl)
				mock.EXPECT().ValidateToken(gomock.Any(), loginToken, userEmail).
					Return(onetimeauth.Claims{}, onetimeauth.ErrTokenExpired)
				return mock
			},
			expect: func(t *testing.T, _ string, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrTokenExpired)
			},
		},
		{
			name: "error_when_session_creation_fails",
			oneTimeAuth: func(ctrl *gomock.Controller) onetimeauth.Service {
				mock := onetimeauthmock.NewService(ctrl)
				mock.EXPECT().ValidateToken(gomock.Any(), loginToken, userEmail).
					Return(onetimeauth.Claims{Email: userEmail, Nonce: "some-nonce"}, nil)
				return mock
			},
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := userdomainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindByEmail(gomock.Any(), userEmail).Return(&existingUser, nil)
				return mock
			},
			sessionStore: func(ctrl *gomock.Controller) session.Store {
				mock := sessionmock.NewStore(ctrl)
				mock.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ string, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := domain.UserRepository(userdomainmock.NewUserRepository(ctrl))
			if tc.userRepo != nil {
				userRepo = tc.userRepo(ctrl)
			}
			sessionStore := session.Store(sessionmock.NewStore(ctrl))
			if tc.sessionStore != nil {
				sessionStore = tc.sessionStore(ctrl)
			}

			srv := service.NewUser(
				tc.oneTimeAuth(ctrl),
				sessionStore,
				userRepo,
				pkgtaskmock.NewScheduler(ctrl),
				pkgpersistencestub.NewTransaction(),
			)

			result, err := srv.VerifyMagicLink(context.Background(), loginToken, userEmail)
			tc.expect(t, result, err)
		})
	}
}

func TestUserService_GetCurrent_Returns(t *testing.T) {
	principal := auth.Principal{
		UserID:          uuid.New(),
		Email:           "someone@example.com",
		PermissionLevel: auth.PermissionLevelContributor,
	}

	tests := []struct {
		name   string
		ctx    context.Context
		expect func(t *testing.T, identity *session.Identity, err error)
	}{
		{
			name: "success_when_authenticated",
			ctx: pkgauth.WithAuthentication[auth.Principal](
				context.Background(),
				pkgauth.Auth[auth.Principal]{AuthPrincipal: &principal},
			),
			expect: func(t *testing.T, identity *session.Identity, err error) {
				require.NoError(t, err)
				require.NotNil(t, identity)
				assert.Equal(t, principal.UserID, identity.UserID)
				assert.Equal(t, principal.Email, identity.Email)
				assert.Equal(t, principal.PermissionLevel, identity.PermissionLevel)
			},
		},
		{
			name: "error_when_anonymous",
			ctx: pkgauth.WithAuthentication[auth.Principal](
				context.Background(),
				pkgauth.Auth[auth.Principal]{},
			),
			expect: func(t *testing.T, identity *session.Identity, err error) {
				assert.ErrorIs(t, err, service.ErrUnauthenticated)
				assert.Nil(t, identity)
			},
		},
		{
			name: "error_when_no_authentication",
			ctx:  context.Background(),
			expect: func(t *testing.T, identity *session.Identity, err error) {
				assert.ErrorIs(t, err, service.ErrUnauthenticated)
				assert.Nil(t, identity)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv := service.NewUser(
				onetimeauthmock.NewService(ctrl),
				sessionmock.NewStore(ctrl),
				userdomainmock.NewUserRepository(ctrl),
				pkgtaskmock.NewScheduler(ctrl),
				pkgpersistencestub.NewTransaction(),
			)

			identity, err := srv.GetCurrent(tc.ctx)
			tc.expect(t, identity, err)
		})
	}
}

func TestUserService_Logout_Returns(t *testing.T) {
	tests := []struct {
		name         string
		sessionID    string
		sessionStore func(ctrl *gomock.Controller) session.Store
		expect       func(t *testing.T, err error)
	}{
		{
			name:      "success",
			sessionID: "some-session-id",
			sessionStore: func(ctrl *gomock.Controller) session.Store {
				mock := sessionmock.NewStore(ctrl)
				mock.EXPECT().Delete(gomock.Any(), "some-session-id").Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:      "success_when_no_session",
			sessionID: "",
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:      "error_when_store_fails",
			sessionID: "some-session-id",
			sessionStore: func(ctrl *gomock.Controller) session.Store {
				mock := sessionmock.NewStore(ctrl)
				mock.EXPECT().Delete(gomock.Any(), "some-session-id").Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionStore := session.Store(sessionmock.NewStore(ctrl))
			if tc.sessionStore != nil {
				sessionStore = tc.sessionStore(ctrl)
			}

			srv := service.NewUser(
				onetimeauthmock.NewService(ctrl),
				sessionStore,
				userdomainmock.NewUserRepository(ctrl),
				pkgtaskmock.NewScheduler(ctrl),
				pkgpersistencestub.NewTransaction(),
			)

			err := srv.Logout(context.Background(), tc.sessionID)
			tc.expect(t, err)
		})
	}
}
