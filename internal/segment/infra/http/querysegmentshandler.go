package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type QuerySegmentsHandler struct {
	segmentService service.Segment
}

func NewQuerySegmentsHandler(segmentService service.Segment) QuerySegmentsHandler {
	return QuerySegmentsHandler{segmentService: segmentService}
}

func (h QuerySegmentsHandler) Method() string {
	return http.MethodPost
}

func (h QuerySegmentsHandler) Path() string {
	return "/query-segments/"
}

func (h QuerySegmentsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[querySegmentsIn](), err)
	if err != nil {
		return err
	}

	bbox := make([]orb.Point, 0, len(in.BBox))
	for _, pair := range in.BBox {
		if len(pair) != 2 {
			w.SetStatusCode(http.StatusBadRequest).
				SetJSONBody(errorDetail{Detail: invalidBBoxDetail})
			return errSegmentBBoxPair
		}
		bbox = append(bbox, orb.Point{pair[0], pair[1]})
	}

	excludeIDs := make([]domain.SegmentID, 0, len(in.ExcludeIDs))
	for _, id := range in.ExcludeIDs {
		excludeIDs = append(excludeIDs, domain.SegmentID{UUID: id})
	}

	segments, err := h.segmentService.Query(r.Context(), service.SegmentQuery{
		BBox:                   bbox,
		ExcludeIDs:             excludeIDs,
		IncludeIfModifiedAfter: in.IncludeIfModifiedAfter,
		WithDetails:            true,
	})
	if err != nil {
		return err
	}

	w.SetJSONBody(toFeatureCollection(segments))
	return nil
}

type querySegmentsIn struct {
	BBox                   [][]float64 `json:"bbox"`
	ExcludeIDs             []uuid.UUID `json:"exclude_ids"`
	IncludeIfModifiedAfter *time.Time  `json:"include_if_modified_after"`
}
