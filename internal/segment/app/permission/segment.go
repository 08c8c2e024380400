package permission

import (
	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
)

// CanOperateSegment allows the segment owner and any contributor to change it.
func CanOperateSegment(ownerID uuid.UUID) pkgauth.Permission[auth.Principal] {
	return func(authentication pkgauth.Authentication[auth.Principal]) (bool, error) {
		principal := authentication.Principal()
		if principal == nil {
			return false, nil
		}

		if principal.UserID == ownerID {
			return true, nil
		}

		return principal.PermissionLevel >= auth.PermissionLevelContributor, nil
	}
}

func CanCreateSegment() pkgauth.Permission[auth.Principal] {
	return func(authentication pkgauth.Authentication[auth.Principal]) (bool, error) {
		return authentication.Principal() != nil, nil
	}
}
