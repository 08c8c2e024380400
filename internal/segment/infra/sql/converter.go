package sql

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/parkplatztransform/parkapi/internal/segment/domain"
)

type (
	sqlxSegment struct {
		ID              domain.SegmentID `db:"id"`
		OwnerID         uuid.UUID        `db:"owner_id"`
		FurtherComments *string          `db:"further_comments"`
		DataSource      *string          `db:"data_source"`
		Geometry        []byte           `db:"geometry"`
		CreatedAt       time.Time        `db:"created_at"`
		ModifiedAt      time.Time        `db:"modified_at"`
	}

	sqlxSubsegmentParking struct {
		SegmentID      domain.SegmentID `db:"segment_id"`
		OrderNumber    int              `db:"order_number"`
		LengthInMeters *float64         `db:"length_in_meters"`
		CarCount       *int             `db:"car_count"`
		Quality        int              `db:"quality"`

		Fee                    *bool   `db:"fee"`
		StreetLocation         *string `db:"street_location"`
		Marked                 *bool   `db:"marked"`
		Alignment              *string `db:"alignment"`
		AlternativeUsageReason *string `db:"alternative_usage_reason"`

		UserRestriction       *bool   `db:"user_restriction"`
		UserRestrictionReason *string `db:"user_restriction_reason"`

		TimeConstraint       *bool   `db:"time_constraint"`
		TimeConstraintReason *string `db:"time_constraint_reason"`

		DurationConstraint       *bool   `db:"duration_constraint"`
		DurationConstraintReason *string `db:"duration_constraint_reason"`
	}

	sqlxSubsegmentNonParking struct {
		SegmentID        domain.SegmentID `db:"segment_id"`
		OrderNumber      int              `db:"order_number"`
		LengthInMeters   *float64         `db:"length_in_meters"`
		Quality          int              `db:"quality"`
		NoParkingReasons pq.StringArray   `db:"no_parking_reasons"`
	}
)

func convertSegments(
	rows []sqlxSegment,
	parkingRows []sqlxSubsegmentParking,
	nonParkingRows []sqlxSubsegmentNonParking,
) ([]domain.Segment, error) {
	parkingBySegment := make(map[domain.SegmentID][]domain.SubsegmentParking, len(rows))
	for _, row := range parkingRows {
		parkingBySegment[row.SegmentID] = append(parkingBySegment[row.SegmentID], domain.SubsegmentParking{
			OrderNumber:              row.OrderNumber,
			LengthInMeters:           row.LengthInMeters,
			CarCount:                 row.CarCount,
			Quality:                  row.Quality,
			Fee:                      row.Fee,
			StreetLocation:           (*domain.StreetLocation)(row.StreetLocation),
			Marked:                   row.Marked,
			Alignment:                (*domain.Alignment)(row.Alignment),
			AlternativeUsageReason:   (*domain.AlternativeUsageReason)(row.AlternativeUsageReason),
			UserRestriction:          row.UserRestriction,
			UserRestrictionReason:    (*domain.UserRestriction)(row.UserRestrictionReason),
			TimeConstraint:           row.TimeConstraint,
			TimeConstraintReason:     row.TimeConstraintReason,
			DurationConstraint:       row.DurationConstraint,
			DurationConstraintReason: row.DurationConstraintReason,
		})
	}

	nonParkingBySegment := make(map[domain.SegmentID][]domain.SubsegmentNonParking, len(rows))
	for _, row := range nonParkingRows {
		reasons := make([]domain.NoParkingReason, 0, len(row.NoParkingReasons))
		for _, reason := range row.NoParkingReasons {
			reasons = append(reasons, domain.NoParkingReason(reason))
		}

		nonParkingBySegment[row.SegmentID] = append(nonParkingBySegment[row.SegmentID], domain.SubsegmentNonParking{
			OrderNumber:      row.OrderNumber,
			LengthInMeters:   row.LengthInMeters,
			Quality:          row.Quality,
			NoParkingReasons: reasons,
		})
	}

	segments := make([]domain.Segment, 0, len(rows))
	for _, row := range rows {
		geometry, err := decodeGeometry(row.Geometry)
		if err != nil {
			return nil, fmt.Errorf("decode segment %v geometry: %w", row.ID, err)
		}

		segments = append(segments, domain.Segment{
			ID:                    row.ID,
			OwnerID:               row.OwnerID,
			FurtherComments:       row.FurtherComments,
			DataSource:            row.DataSource,
			Geometry:              geometry,
			SubsegmentsParking:    parkingBySegment[row.ID],
			SubsegmentsNonParking: nonParkingBySegment[row.ID],
			CreatedAt:             row.CreatedAt,
			ModifiedAt:            row.ModifiedAt,
		})
	}

	return segments, nil
}

func encodeGeometry(line orb.LineString) ([]byte, error) {
	data, err := json.Marshal(geojson.NewGeometry(line))
	if err != nil {
		return nil, fmt.Errorf("encode geometry: %w", err)
	}
	return data, nil
}

func encodeBoundingBox(ring []orb.Point) ([]byte, error) {
	polygonRing := orb.Ring(ring)
	if len(polygonRing) > 0 && !polygonRing.Closed() {
		polygonRing = append(polygonRing, polygonRing[0])
	}

	data, err := json.Marshal(geojson.NewGeometry(orb.Polygon{polygonRing}))
	if err != nil {
		return nil, fmt.Errorf("encode bounding box: %w", err)
	}
	return data, nil
}

func decodeGeometry(data []byte) (orb.LineString, error) {
	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}

	line, ok := geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("unexpected geometry type %s", geometry.Type)
	}

	return line, nil
}

func noParkingReasonsToStrings(reasons []domain.NoParkingReason) []string {
	result := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		result = append(result, string(reason))
	}
	return result
}
