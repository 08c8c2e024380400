package onetimeauth_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth"
	onetimeauthmock "github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth/mock"
)

var testConfig = onetimeauth.Config{
	SecretKey:     []byte("some-secret-key"),
	BaseURL:       "https://api.example.com",
	TokenTTL:      14 * 24 * time.Hour,
	TokenIssueTTL: 2 * time.Hour,
}

func TestService_ValidateToken_Returns(t *testing.T) {
	userEmail := "someone@example.com"

	tests := []struct {
		name         string
		config       onetimeauth.Config
		token        func(t *testing.T, srv onetimeauth.Service) string
		email        string
		nonceStorage func(ctrl *gomock.Controller) onetimeauth.NonceStorage
		expect       func(t *testing.T, claims onetimeauth.Claims, err error)
	}{
		{
			name:   "success",
			config: testConfig,
			token: func(t *testing.T, srv onetimeauth.Service) string {
				token, err := srv.GenerateToken(userEmail)
				require.NoError(t, err)
				return token
			},
			email: userEmail,
			nonceStorage: func(ctrl *gomock.Controller) onetimeauth.NonceStorage {
				mock := onetimeauthmock.NewNonceStorage(ctrl)
				mock.EXPECT().Burn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			expect: func(t *testing.T, claims onetimeauth.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, userEmail, claims.Email)
				assert.NotEmpty(t, claims.Nonce)
				assert.False(t, claims.IssuedAt.IsZero())
			},
		},
		{
			name:   "success_when_no_expected_email",
			config: testConfig,
			token: func(t *testing.T, srv onetimeauth.Service) string {
				token, err := srv.GenerateToken(userEmail)
				require.NoError(t, err)
				return token
			},
			email: "",
			nonceStorage: func(ctrl *gomock.Controller) onetimeauth.NonceStorage {
				mock := onetimeauthmock.NewNonceStorage(ctrl)
				mock.EXPECT().Burn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			expect: func(t *testing.T, claims onetimeauth.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, userEmail, claims.Email)
			},
		},
		{
			name:   "error_when_token_is_not_base64",
			config: testConfig,
			token: func(*testing.T, onetimeauth.Service) string {
				return "definitely-not-a-token"
			},
			email: userEmail,
			expect: func(t *testing.T, _ onetimeauth.Claims, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrInvalidTokenFormat)
			},
		},
		{
			name:   "error_when_token_is_garbage",
			config: testConfig,
			token: func(*testing.T, onetimeauth.Service) string {
				return base64.StdEncoding.EncodeToString([]byte("garbage"))
			},
			email: userEmail,
			expect: func(t *testing.T, _ onetimeauth.Claims, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrMalformedToken)
				assert.NotErrorIs(t, err, onetimeauth.ErrInvalidTokenFormat)
				assert.NotErrorIs(t, err, onetimeauth.ErrInvalidSignature)
			},
		},
		{
			name:   "error_when_token_signed_with_another_key",
			config: testConfig,
			token: func(t *testing.T, _ onetimeauth.Service) string {
				otherConfig := testConfig
				otherConfig.SecretKey = []byte("another-secret-key")
				other := onetimeauth.New(otherConfig, nil)

				token, err := other.GenerateToken(userEmail)
				require.NoError(t, err)
				return token
			},
			email: userEmail,
			expect: func(t *testing.T, _ onetimeauth.Claims, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrInvalidSignature)
				assert.NotErrorIs(t, err, onetimeauth.ErrMalformedToken)
			},
		},
		{
			name: "error_when_token_expired",
			config: onetimeauth.Config{
				SecretKey:     testConfig.SecretKey,
				BaseURL:       testConfig.BaseURL,
				TokenTTL:      -time.Minute,
				TokenIssueTTL: testConfig.TokenIssueTTL,
			},
			token: func(t *testing.T, srv onetimeauth.Service) string {
				token, err := srv.GenerateToken(userEmail)
				require.NoError(t, err)
				return token
			},
			email: userEmail,
			expect: func(t *testing.T, _ onetimeauth.Claims, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrTokenExpired)
			},
		},
		{
			name: "error_when_issue_window_passed",
			config: onetimeauth.Config{
				SecretKey:     testConfig.SecretKey,
				BaseURL:       testConfig.BaseURL,
				TokenTTL:      testConfig.TokenTTL,
				TokenIssueTTL: -time.Minute,
			},
			token: func(t *testing.T, srv onetimeauth.Service) string {
				token, err := srv.GenerateToken(userEmail)
				require.NoError(t, err)
				return token
			},
			email: userEmail,
			expect: func(t *testing.T, _ onetimeauth.Claims, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrTokenIssuedTooLongAgo)
			},
		},
		{
			name:   "error_when_email_mismatch",
			config: testConfig,
			token: func(t *testing.T, srv onetimeauth.Service) string {
				token, err := srv.GenerateToken(userEmail)
				require.NoError(t, err)
				return token
			},
			email: "another@example.com",
			expect: func(t *testing.T, _ onetimeauth.Claims, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrTokenSubjectMismatch)
			},
		},
		{
			name:   "error_when_nonce_already_used",
			config: testConfig,
			token: func(t *testing.T, srv onetimeauth.Service) string {
				token, err := srv.GenerateToken(userEmail)
				require.NoError(t, err)
				return token
			},
			email: userEmail,
			nonceStorage: func(ctrl *gomock.Controller) onetimeauth.NonceStorage {
				mock := onetimeauthmock.NewNonceStorage(ctrl)
				mock.EXPECT().Burn(gomock.Any(), gomock.Any(), gomock.Any()).Return(onetimeauth.ErrNonceAlreadyUsed)
				return mock
			},
			expect: func(t *testing.T, _ onetimeauth.Claims, err error) {
				assert.ErrorIs(t, err, onetimeauth.ErrNonceAlreadyUsed)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			nonceStorage := onetimeauth.NonceStorage(onetimeauthmock.NewNonceStorage(ctrl))
			if tc.nonceStorage != nil {
				nonceStorage = tc.nonceStorage(ctrl)
			}

			srv := onetimeauth.New(tc.config, nonceStorage)
			token := tc.token(t, srv)

			claims, err := srv.ValidateToken(context.Background(), token, tc.email)
			tc.expect(t, claims, err)
		})
	}
}

func TestService_GenerateToken_NoncesDiffer(t *testing.T) {
	srv := onetimeauth.New(testConfig, nil)

	first, err := srv.GenerateToken("someone@example.com")
	require.NoError(t, err)
	second, err := srv.GenerateToken("someone@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	firstClaims, err := srv.DecodeToken(first)
	require.NoError(t, err)
	secondClaims, err := srv.DecodeToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.Nonce, secondClaims.Nonce)
}
