package http

import (
	"errors"
	"net/http"

	"github.com/parkplatztransform/parkapi/internal/user/app/service"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type SendMagicLinkHandler struct {
	userService service.User
}

func NewSendMagicLinkHandler(userService service.User) SendMagicLinkHandler {
	return SendMagicLinkHandler{userService: userService}
}

func (h SendMagicLinkHandler) Method() string {
	return http.MethodPost
}

func (h SendMagicLinkHandler) Path() string {
	return "/users/"
}

func (h SendMagicLinkHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[sendMagicLinkIn](), err)
	if err != nil {
		return err
	}

	err = h.userService.RequestMagicLink(r.Context(), in.Email)
	if errors.Is(err, service.ErrInvalidEmail) {
		w.SetStatusCode(http.StatusUnprocessableEntity)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(sendMagicLinkOut{Email: in.Email})
	return nil
}

type (
	sendMagicLinkIn struct {
		Email string `json:"email"`
	}

	sendMagicLinkOut struct {
		Email string `json:"email"`
	}
)
