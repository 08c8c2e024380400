package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type DeleteSegmentHandler struct {
	segmentService service.Segment
}

func NewDeleteSegmentHandler(segmentService service.Segment) DeleteSegmentHandler {
	return DeleteSegmentHandler{segmentService: segmentService}
}

func (h DeleteSegmentHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteSegmentHandler) Path() string {
	return "/segments/{segmentID}/"
}

func (h DeleteSegmentHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	segmentID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("segmentID"), err)
	if err != nil {
		return err
	}

	err = h.segmentService.Delete(r.Context(), domain.SegmentID{UUID: segmentID})
	switch {
	case errors.Is(err, service.ErrSegmentNotFound):
		w.SetStatusCode(http.StatusNotFound)
		return err
	case err != nil:
		setAuthErrorCode(w, err)
		return err
	}

	w.SetJSONBody(segmentID.String())
	return nil
}
