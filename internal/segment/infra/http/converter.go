package http

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
)

type (
	segmentFeatureCollection struct {
		Type     string           `json:"type"`
		Features []segmentFeature `json:"features"`
	}

	segmentFeature struct {
		Type       string            `json:"type"`
		ID         uuid.UUID         `json:"id"`
		Geometry   *geojson.Geometry `json:"geometry"`
		Properties segmentProperties `json:"properties"`
	}

	segmentFeatureIn struct {
		Geometry   *geojson.Geometry   `json:"geometry"`
		Properties segmentPropertiesIn `json:"properties"`
	}

	segmentProperties struct {
		OwnerID         uuid.UUID       `json:"owner_id"`
		FurtherComments *string         `json:"further_comments"`
		DataSource      *string         `json:"data_source"`
		CreatedAt       time.Time       `json:"created_at"`
		ModifiedAt      time.Time       `json:"modified_at"`
		Subsegments     []subsegmentOut `json:"subsegments"`
	}

	segmentPropertiesIn struct {
		FurtherComments *string        `json:"further_comments"`
		DataSource      *string        `json:"data_source"`
		Subsegments     []subsegmentIn `json:"subsegments"`
	}

	subsegmentOut struct {
		ParkingAllowed bool     `json:"parking_allowed"`
		OrderNumber    int      `json:"order_number"`
		LengthInMeters *float64 `json:"length_in_meters,omitempty"`
		CarCount       *int     `json:"car_count,omitempty"`
		Quality        int      `json:"quality"`

		Fee                    *bool   `json:"fee,omitempty"`
		StreetLocation         *string `json:"street_location,omitempty"`
		Marked                 *bool   `json:"marked,omitempty"`
		Alignment              *string `json:"alignment,omitempty"`
		AlternativeUsageReason *string `json:"alternative_usage_reason,omitempty"`

		UserRestriction       *bool   `json:"user_restriction,omitempty"`
		UserRestrictionReason *string `json:"user_restriction_reason,omitempty"`

		TimeConstraint       *bool   `json:"time_constraint,omitempty"`
		TimeConstraintReason *string `json:"time_constraint_reason,omitempty"`

		DurationConstraint       *bool   `json:"duration_constraint,omitempty"`
		DurationConstraintReason *string `json:"duration_constraint_reason,omitempty"`

		NoParkingReasons []string `json:"no_parking_reasons,omitempty"`
	}

	subsegmentIn struct {
		ParkingAllowed bool     `json:"parking_allowed"`
		LengthInMeters *float64 `json:"length_in_meters"`
		CarCount       *int     `json:"car_count"`
		Quality        int      `json:"quality"`

		Fee                    *bool   `json:"fee"`
		StreetLocation         *string `json:"street_location"`
		Marked                 *bool   `json:"marked"`
		Alignment              *string `json:"alignment"`
		AlternativeUsageReason *string `json:"alternative_usage_reason"`

		UserRestriction       *bool   `json:"user_restriction"`
		UserRestrictionReason *string `json:"user_restriction_reason"`

		TimeConstraint       *bool   `json:"time_constraint"`
		TimeConstraintReason *string `json:"time_constraint_reason"`

		DurationConstraint       *bool   `json:"duration_constraint"`
		DurationConstraintReason *string `json:"duration_constraint_reason"`

		NoParkingReasons []string `json:"no_parking_reasons"`
	}
)

func toFeatureCollection(segments []domain.Segment) segmentFeatureCollection {
	features := make([]segmentFeature, 0, len(segments))
	for i := range segments {
		features = append(features, toFeature(&segments[i]))
	}

	return segmentFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

func toFeature(segment *domain.Segment) segmentFeature {
	subsegments := make([]subsegmentOut, 0, len(segment.SubsegmentsParking)+len(segment.SubsegmentsNonParking))
	for _, sub := range segment.SubsegmentsParking {
		subsegments = append(subsegments, subsegmentOut{
			ParkingAllowed:           true,
			OrderNumber:              sub.OrderNumber,
			LengthInMeters:           sub.LengthInMeters,
			CarCount:                 sub.CarCount,
			Quality:                  sub.Quality,
			Fee:                      sub.Fee,
			StreetLocation:           (*string)(sub.StreetLocation),
			Marked:                   sub.Marked,
			Alignment:                (*string)(sub.Alignment),
			AlternativeUsageReason:   (*string)(sub.AlternativeUsageReason),
			UserRestriction:          sub.UserRestriction,
			UserRestrictionReason:    (*string)(sub.UserRestrictionReason),
			TimeConstraint:           sub.TimeConstraint,
			TimeConstraintReason:     sub.TimeConstraintReason,
			DurationConstraint:       sub.DurationConstraint,
			DurationConstraintReason: sub.DurationConstraintReason,
		})
	}
	for _, sub := range segment.SubsegmentsNonParking {
		reasons := make([]string, 0, len(sub.NoParkingReasons))
		for _, reason := range sub.NoParkingReasons {
			reasons = append(reasons, string(reason))
		}

		subsegments = append(subsegments, subsegmentOut{
			ParkingAllowed:   false,
			OrderNumber:      sub.OrderNumber,
			LengthInMeters:   sub.LengthInMeters,
			Quality:          sub.Quality,
			NoParkingReasons: reasons,
		})
	}
	sort.Slice(subsegments, func(i, j int) bool {
		return subsegments[i].OrderNumber < subsegments[j].OrderNumber
	})

	return segmentFeature{
		Type:     "Feature",
		ID:       segment.ID.UUID,
		Geometry: geojson.NewGeometry(segment.Geometry),
		Properties: segmentProperties{
			OwnerID:         segment.OwnerID,
			FurtherComments: segment.FurtherComments,
			DataSource:      segment.DataSource,
			CreatedAt:       segment.CreatedAt,
			ModifiedAt:      segment.ModifiedAt,
			Subsegments:     subsegments,
		},
	}
}

func toSegmentData(in segmentFeatureIn) (service.SegmentData, error) {
	if in.Geometry == nil {
		return service.SegmentData{}, fmt.Errorf("geometry is required")
	}

	line, ok := in.Geometry.Geometry().(orb.LineString)
	if !ok {
		return service.SegmentData{}, fmt.Errorf("unexpected geometry type %s", in.Geometry.Type)
	}

	data := service.SegmentData{
		Geometry:        line,
		FurtherComments: in.Properties.FurtherComments,
		DataSource:      in.Properties.DataSource,
	}
	for _, sub := range in.Properties.Subsegments {
		if sub.ParkingAllowed {
			data.SubsegmentsParking = append(data.SubsegmentsParking, domain.SubsegmentParking{
				LengthInMeters:           sub.LengthInMeters,
				CarCount:                 sub.CarCount,
				Quality:                  sub.Quality,
				Fee:                      sub.Fee,
				StreetLocation:           (*domain.StreetLocation)(sub.StreetLocation),
				Marked:                   sub.Marked,
				Alignment:                (*domain.Alignment)(sub.Alignment),
				AlternativeUsageReason:   (*domain.AlternativeUsageReason)(sub.AlternativeUsageReason),
				UserRestriction:          sub.UserRestriction,
				UserRestrictionReason:    (*domain.UserRestriction)(sub.UserRestrictionReason),
				TimeConstraint:           sub.TimeConstraint,
				TimeConstraintReason:     sub.TimeConstraintReason,
				DurationConstraint:       sub.DurationConstraint,
				DurationConstraintReason: sub.DurationConstraintReason,
			})
			continue
		}

		reasons := make([]domain.NoParkingReason, 0, len(sub.NoParkingReasons))
		for _, reason := range sub.NoParkingReasons {
			reasons = append(reasons, domain.NoParkingReason(reason))
		}
		data.SubsegmentsNonParking = append(data.SubsegmentsNonParking, domain.SubsegmentNonParking{
			LengthInMeters:   sub.LengthInMeters,
			Quality:          sub.Quality,
			NoParkingReasons: reasons,
		})
	}

	return data, nil
}

// parseBBoxParam parses a flat list of comma separated coordinates,
// e.g. "13.1,52.4,13.2,52.4,13.2,52.5" into polygon ring points.
func parseBBoxParam(param string) ([]orb.Point, error) {
	parts := strings.Split(param, ",")
	if len(parts) < 6 || len(parts)%2 != 0 {
		return nil, fmt.Errorf("bbox must contain at least three lon,lat pairs")
	}

	points := make([]orb.Point, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse bbox longitude: %w", err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse bbox latitude: %w", err)
		}
		points = append(points, orb.Point{lon, lat})
	}

	return points, nil
}
