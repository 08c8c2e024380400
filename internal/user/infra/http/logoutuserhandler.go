package http

import (
	"net/http"

	"github.com/parkplatztransform/parkapi/internal/user/app/service"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type LogoutUserHandler struct {
	userService   service.User
	sessionCookie SessionCookieConfig
}

func NewLogoutUserHandler(userService service.User, sessionCookie SessionCookieConfig) LogoutUserHandler {
	return LogoutUserHandler{
		userService:   userService,
		sessionCookie: sessionCookie,
	}
}

func (h LogoutUserHandler) Method() string {
	return http.MethodPost
}

func (h LogoutUserHandler) Path() string {
	return "/users/logout/"
}

func (h LogoutUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	sessionID := ""
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	err := h.userService.Logout(r.Context(), sessionID)
	if err != nil {
		return err
	}

	w.SetCookie(h.sessionCookie.Expired()).
		SetJSONBody(logoutUserOut{Deleted: sessionID})
	return nil
}

type logoutUserOut struct {
	Deleted string `json:"deleted"`
}
