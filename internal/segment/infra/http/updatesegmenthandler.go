package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type UpdateSegmentHandler struct {
	segmentService service.Segment
}

func NewUpdateSegmentHandler(segmentService service.Segment) UpdateSegmentHandler {
	return UpdateSegmentHandler{segmentService: segmentService}
}

func (h UpdateSegmentHandler) Method() string {
	return http.MethodPut
}

func (h UpdateSegmentHandler) Path() string {
	return "/segments/{segmentID}/"
}

func (h UpdateSegmentHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	segmentID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("segmentID"), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[segmentFeatureIn](), err)
	if err != nil {
		return err
	}

	data, err := toSegmentData(in)
	if err != nil {
		w.SetStatusCode(http.StatusUnprocessableEntity)
		return err
	}

	segment, err := h.segmentService.Update(r.Context(), domain.SegmentID{UUID: segmentID}, data)
	switch {
	case errors.Is(err, service.ErrSegmentNotFound):
		w.SetStatusCode(http.StatusNotFound)
		return err
	case errors.Is(err, service.ErrInvalidGeometry):
		w.SetStatusCode(http.StatusUnprocessableEntity)
		return err
	case err != nil:
		setAuthErrorCode(w, err)
		return err
	}

	w.SetJSONBody(toFeature(segment))
	return nil
}
