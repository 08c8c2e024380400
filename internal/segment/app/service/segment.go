package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb"

	internalauth "github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/segment/app/permission"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
	"github.com/parkplatztransform/parkapi/pkg/persistence"
)

var (
	ErrSegmentNotFound = errors.New("segment not found")
	ErrInvalidGeometry = errors.New("segment geometry must be a line string with at least two points")
)

const updateSegmentsLockName = "update_segments"

type (
	Segment interface {
		GetByID(ctx context.Context, id domain.SegmentID) (*domain.Segment, error)
		Query(ctx context.Context, q SegmentQuery) ([]domain.Segment, error)
		Create(ctx context.Context, data SegmentData) (*domain.Segment, error)
		Update(ctx context.Context, id domain.SegmentID, data SegmentData) (*domain.Segment, error)
		Delete(ctx context.Context, id domain.SegmentID) error
	}

	SegmentQuery struct {
		BBox                   []orb.Point
		ModifiedAfter          *time.Time
		ExcludeIDs             []domain.SegmentID
		IncludeIfModifiedAfter *time.Time
		WithDetails            bool
	}

	SegmentData struct {
		Geometry              orb.LineString
		FurtherComments       *string
		DataSource            *string
		SubsegmentsParking    []domain.SubsegmentParking
		SubsegmentsNonParking []domain.SubsegmentNonParking
	}

	segmentService struct {
		segmentRepo domain.SegmentRepository
		permissions internalauth.PermissionService
		transaction persistence.Transaction
	}
)

func NewSegment(
	segmentRepo domain.SegmentRepository,
	permissions internalauth.PermissionService,
	transaction persistence.Transaction,
) Segment {
	return &segmentService{
		segmentRepo: segmentRepo,
		permissions: permissions,
		transaction: transaction,
	}
}

func (s *segmentService) GetByID(ctx context.Context, id domain.SegmentID) (*domain.Segment, error) {
	segment, err := s.segmentRepo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrSegmentNotFound) {
		return nil, ErrSegmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return segment, nil
}

func (s *segmentService) Query(ctx context.Context, q SegmentQuery) ([]domain.Segment, error) {
	segments, err := s.segmentRepo.Find(ctx, domain.FindSegmentSpecification{
		BBox:                   q.BBox,
		ModifiedAfter:          q.ModifiedAfter,
		ExcludeIDs:             q.ExcludeIDs,
		IncludeIfModifiedAfter: q.IncludeIfModifiedAfter,
		WithDetails:            q.WithDetails,
	})
	if err != nil {
		return nil, fmt.Errorf("find segments: %w", err)
	}

	return segments, nil
}

func (s *segmentService) Create(ctx context.Context, data SegmentData) (*domain.Segment, error) {
	if err := s.permissions.Check(ctx, permission.CanCreateSegment()); err != nil {
		return nil, err
	}
	if len(data.Geometry) < 2 {
		return nil, ErrInvalidGeometry
	}

	principal, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	segment := &domain.Segment{
		ID:                    s.segmentRepo.NextID(),
		OwnerID:               principal.UserID,
		FurtherComments:       data.FurtherComments,
		DataSource:            data.DataSource,
		Geometry:              data.Geometry,
		SubsegmentsParking:    withParkingOrderNumbers(data.SubsegmentsParking),
		SubsegmentsNonParking: withNonParkingOrderNumbers(data.SubsegmentsNonParking),
		CreatedAt:             now,
		ModifiedAt:            now,
	}

	err = s.transaction.Execute(ctx, func(ctx context.Context) error {
		return s.segmentRepo.Store(ctx, segment)
	})
	if err != nil {
		return nil, fmt.Errorf("store segment: %w", err)
	}

	return segment, nil
}

func (s *segmentService) Update(ctx context.Context, id domain.SegmentID, data SegmentData) (*domain.Segment, error) {
	if len(data.Geometry) < 2 {
		return nil, ErrInvalidGeometry
	}

	principal, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	updateSegmentImpl := func(ctx context.Context) (*domain.Segment, error) {
		segment, err := s.segmentRepo.FindByID(ctx, id)
		if errors.Is(err, domain.ErrSegmentNotFound) {
			return nil, ErrSegmentNotFound
		}
		if err != nil {
			return nil, err
		}

		if err = s.permissions.Check(ctx, permission.CanOperateSegment(segment.OwnerID)); err != nil {
			return nil, err
		}

		segment.Geometry = data.Geometry
		segment.FurtherComments = data.FurtherComments
		segment.DataSource = data.DataSource
		segment.SubsegmentsParking = withParkingOrderNumbers(data.SubsegmentsParking)
		segment.SubsegmentsNonParking = withNonParkingOrderNumbers(data.SubsegmentsNonParking)
		// ownership follows the last editor
		segment.OwnerID = principal.UserID
		segment.ModifiedAt = time.Now()

		if err = s.segmentRepo.Store(ctx, segment); err != nil {
			return nil, fmt.Errorf("store segment: %w", err)
		}

		return segment, nil
	}

	return persistence.WithinTransactionWithResult(ctx, s.transaction, updateSegmentImpl, updateSegmentsLockName)
}

func (s *segmentService) Delete(ctx context.Context, id domain.SegmentID) error {
	return s.transaction.Execute(ctx, func(ctx context.Context) error {
		segment, err := s.segmentRepo.FindByID(ctx, id)
		if errors.Is(err, domain.ErrSegmentNotFound) {
			return ErrSegmentNotFound
		}
		if err != nil {
			return err
		}

		if err = s.permissions.Check(ctx, permission.CanOperateSegment(segment.OwnerID)); err != nil {
			return err
		}

		return s.segmentRepo.Delete(ctx, id)
	}, updateSegmentsLockName)
}

func currentPrincipal(ctx context.Context) (internalauth.Principal, error) {
	authentication, ok := pkgauth.GetAuthentication[internalauth.Principal](ctx)
	if !ok || !authentication.IsAuthenticated() {
		return internalauth.Principal{}, pkgauth.ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}

func withParkingOrderNumbers(subsegments []domain.SubsegmentParking) []domain.SubsegmentParking {
	for i := range subsegments {
		subsegments[i].OrderNumber = i
	}
	return subsegments
}

func withNonParkingOrderNumbers(subsegments []domain.SubsegmentNonParking) []domain.SubsegmentNonParking {
	for i := range subsegments {
		subsegments[i].OrderNumber = i
	}
	return subsegments
}
