package http

import (
	"errors"
	"net/http"

	"github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth"
	"github.com/parkplatztransform/parkapi/internal/user/app/service"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type VerifyMagicLinkHandler struct {
	userService   service.User
	sessionCookie SessionCookieConfig
	frontendURL   string
}

func NewVerifyMagicLinkHandler(
	userService service.User,
	sessionCookie SessionCookieConfig,
	frontendURL string,
) VerifyMagicLinkHandler {
	return VerifyMagicLinkHandler{
		userService:   userService,
		sessionCookie: sessionCookie,
		frontendURL:   frontendURL,
	}
}

func (h VerifyMagicLinkHandler) Method() string {
	return http.MethodGet
}

func (h VerifyMagicLinkHandler) Path() string {
	return "/users/verify/"
}

func (h VerifyMagicLinkHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	code, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[string]("code"), err)
	email, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[string]("email"), err)
	if err != nil {
		return err
	}

	sessionID, err := h.userService.VerifyMagicLink(r.Context(), code, email)
	if isTokenValidationError(err) {
		w.SetStatusCode(http.StatusUnauthorized)
		return err
	}
	if err != nil {
		return err
	}

	w.SetCookie(h.sessionCookie.New(sessionID)).
		SetHeader("Location", h.frontendURL).
		SetStatusCode(http.StatusFound)
	return nil
}

func isTokenValidationError(err error) bool {
	return errors.Is(err, onetimeauth.ErrInvalidTokenFormat) ||
		errors.Is(err, onetimeauth.ErrInvalidSignature) ||
		errors.Is(err, onetimeauth.ErrMalformedToken) ||
		errors.Is(err, onetimeauth.ErrTokenExpired) ||
		errors.Is(err, onetimeauth.ErrTokenIssuedTooLongAgo) ||
		errors.Is(err, onetimeauth.ErrTokenSubjectMismatch) ||
		errors.Is(err, onetimeauth.ErrNonceAlreadyUsed)
}
