package http

import (
	"errors"
	"net/http"

	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type CreateSegmentHandler struct {
	segmentService service.Segment
}

func NewCreateSegmentHandler(segmentService service.Segment) CreateSegmentHandler {
	return CreateSegmentHandler{segmentService: segmentService}
}

func (h CreateSegmentHandler) Method() string {
	return http.MethodPost
}

func (h CreateSegmentHandler) Path() string {
	return "/segments/"
}

func (h CreateSegmentHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[segmentFeatureIn](), err)
	if err != nil {
		return err
	}

	data, err := toSegmentData(in)
	if err != nil {
		w.SetStatusCode(http.StatusUnprocessableEntity)
		return err
	}

	segment, err := h.segmentService.Create(r.Context(), data)
	if errors.Is(err, service.ErrInvalidGeometry) {
		w.SetStatusCode(http.StatusUnprocessableEntity)
		return err
	}
	if err != nil {
		setAuthErrorCode(w, err)
		return err
	}

	w.SetStatusCode(http.StatusCreated).
		SetJSONBody(toFeature(segment))
	return nil
}
