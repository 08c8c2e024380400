//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SegmentRepository=SegmentRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const Name = "segment"

var ErrSegmentNotFound = errors.New("segment not found")

type (
	Segment struct {
		ID              SegmentID
		OwnerID         uuid.UUID
		FurtherComments *string
		DataSource      *string
		Geometry        orb.LineString

		SubsegmentsParking    []SubsegmentParking
		SubsegmentsNonParking []SubsegmentNonParking

		CreatedAt  time.Time
		ModifiedAt time.Time
	}

	// SubsegmentParking describes one ordered stretch of a segment where
	// parking is allowed.
	SubsegmentParking struct {
		OrderNumber    int
		LengthInMeters *float64
		CarCount       *int
		Quality        int

		Fee                    *bool
		StreetLocation         *StreetLocation
		Marked                 *bool
		Alignment              *Alignment
		AlternativeUsageReason *AlternativeUsageReason

		UserRestriction       *bool
		UserRestrictionReason *UserRestriction

		TimeConstraint       *bool
		TimeConstraintReason *string

		DurationConstraint       *bool
		DurationConstraintReason *string
	}

	// SubsegmentNonParking describes one ordered stretch of a segment where
	// parking is not possible.
	SubsegmentNonParking struct {
		OrderNumber      int
		LengthInMeters   *float64
		Quality          int
		NoParkingReasons []NoParkingReason
	}

	FindSegmentSpecification struct {
		// BBox is a closed polygon ring, segments intersecting it match.
		BBox                   []orb.Point
		ModifiedAfter          *time.Time
		ExcludeIDs             []SegmentID
		IncludeIfModifiedAfter *time.Time
		WithDetails            bool
	}

	SegmentRepository interface {
		NextID() SegmentID
		Store(context.Context, *Segment) error
		FindByID(context.Context, SegmentID) (*Segment, error)
		Find(context.Context, FindSegmentSpecification) ([]Segment, error)
		Delete(context.Context, SegmentID) error
	}

	SegmentID struct{ uuid.UUID }
)
