package http

import (
	"net/http"
	"time"

	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type GetSegmentsHandler struct {
	segmentService service.Segment
}

func NewGetSegmentsHandler(segmentService service.Segment) GetSegmentsHandler {
	return GetSegmentsHandler{segmentService: segmentService}
}

func (h GetSegmentsHandler) Method() string {
	return http.MethodGet
}

func (h GetSegmentsHandler) Path() string {
	return "/segments/"
}

func (h GetSegmentsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	bboxParam := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("bbox"), err)
	modifiedAfter := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[time.Time]("modified_after"), err)
	details := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[bool]("details"), err)

	q := service.SegmentQuery{
		ModifiedAfter: modifiedAfter,
		WithDetails:   details == nil || *details,
	}
	if bboxParam != nil {
		q.BBox, err = parseBBoxParam(*bboxParam)
		if err != nil {
			w.SetStatusCode(http.StatusBadRequest).
				SetJSONBody(errorDetail{Detail: invalidBBoxDetail})
			return err
		}
	}

	segments, err := h.segmentService.Query(r.Context(), q)
	if err != nil {
		return err
	}

	w.SetJSONBody(toFeatureCollection(segments))
	return nil
}
