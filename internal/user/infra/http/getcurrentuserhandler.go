package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/user/app/service"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type GetCurrentUserHandler struct {
	userService service.User
}

func NewGetCurrentUserHandler(userService service.User) GetCurrentUserHandler {
	return GetCurrentUserHandler{userService: userService}
}

func (h GetCurrentUserHandler) Method() string {
	return http.MethodGet
}

func (h GetCurrentUserHandler) Path() string {
	return "/users/me/"
}

func (h GetCurrentUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	identity, err := h.userService.GetCurrent(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(userOut{
		ID:              identity.UserID,
		Email:           identity.Email,
		PermissionLevel: int(identity.PermissionLevel),
	})
	return nil
}

type userOut struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	PermissionLevel int       `json:"permission_level"`
}
