package permission_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/segment/app/permission"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
)

func TestCanOperateSegment_Returns(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name      string
		principal *auth.Principal
		allowed   bool
	}{
		{
			name: "allowed_for_owner",
			principal: &auth.Principal{
				UserID:          ownerID,
				PermissionLevel: auth.PermissionLevelGuest,
			},
			allowed: true,
		},
		{
			name: "allowed_for_contributor",
			principal: &auth.Principal{
				UserID:          uuid.New(),
				PermissionLevel: auth.PermissionLevelContributor,
			},
			allowed: true,
		},
		{
			name: "denied_for_other_guest",
			principal: &auth.Principal{
				UserID:          uuid.New(),
				PermissionLevel: auth.PermissionLevelGuest,
			},
			allowed: false,
		},
		{
			name:      "denied_for_anonymous",
			principal: nil,
			allowed:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			authentication := pkgauth.Auth[auth.Principal]{AuthPrincipal: tc.principal}

			allowed, err := permission.CanOperateSegment(ownerID)(authentication)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestCanCreateSegment_Returns(t *testing.T) {
	authenticated := pkgauth.Auth[auth.Principal]{AuthPrincipal: &auth.Principal{
		UserID:          uuid.New(),
		PermissionLevel: auth.PermissionLevelGuest,
	}}

	allowed, err := permission.CanCreateSegment()(authenticated)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = permission.CanCreateSegment()(pkgauth.Auth[auth.Principal]{})
	require.NoError(t, err)
	assert.False(t, allowed)
}
