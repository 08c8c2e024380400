package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

var errSegmentBBoxPair = errors.New("bbox entries must be lon,lat pairs")

type GetSegmentHandler struct {
	segmentService service.Segment
}

func NewGetSegmentHandler(segmentService service.Segment) GetSegmentHandler {
	return GetSegmentHandler{segmentService: segmentService}
}

func (h GetSegmentHandler) Method() string {
	return http.MethodGet
}

func (h GetSegmentHandler) Path() string {
	return "/segments/{segmentID}/"
}

func (h GetSegmentHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	segmentID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("segmentID"), err)
	if err != nil {
		return err
	}

	segment, err := h.segmentService.GetByID(r.Context(), domain.SegmentID{UUID: segmentID})
	if errors.Is(err, service.ErrSegmentNotFound) {
		w.SetStatusCode(http.StatusNotFound)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(toFeature(segment))
	return nil
}
