package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internalauth "github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	segmentdomainmock "github.com/parkplatztransform/parkapi/internal/segment/domain/mock"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
	pkgpersistencestub "github.com/parkplatztransform/parkapi/pkg/persistence/stub"
)

var testGeometry = orb.LineString{{13.377, 52.516}, {13.379, 52.517}}

func authenticatedContext(principal internalauth.Principal) context.Context {
	return pkgauth.WithAuthentication[internalauth.Principal](
		context.Background(),
		pkgauth.Auth[internalauth.Principal]{AuthPrincipal: &principal},
	)
}

func anonymousContext() context.Context {
	return pkgauth.WithAuthentication[internalauth.Principal](
		context.Background(),
		pkgauth.Auth[internalauth.Principal]{},
	)
}

func newSegmentService(t *testing.T, segmentRepo func(ctrl *gomock.Controller) domain.SegmentRepository) service.Segment {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := domain.SegmentRepository(segmentdomainmock.NewSegmentRepository(ctrl))
	if segmentRepo != nil {
		repo = segmentRepo(ctrl)
	}

	return service.NewSegment(
		repo,
		pkgauth.NewPermissionService[internalauth.Principal](),
		pkgpersistencestub.NewTransaction(),
	)
}

func TestSegmentService_Create_Returns(t *testing.T) {
	editorID := uuid.New()
	segmentID := domain.SegmentID{UUID: uuid.New()}
	editor := internalauth.Principal{
		UserID:          editorID,
		Email:           "someone@example.com",
		PermissionLevel: internalauth.PermissionLevelGuest,
	}

	tests := []struct {
		name        string
		ctx         context.Context
		data        service.SegmentData
		segmentRepo func(ctrl *gomock.Controller) domain.SegmentRepository
		expect      func(t *testing.T, segment *domain.Segment, err error)
	}{
		{
			name: "success",
			ctx:  authenticatedContext(editor),
			data: service.SegmentData{
				Geometry: testGeometry,
				SubsegmentsParking: []domain.SubsegmentParking{
					{Quality: 1},
					{Quality: 2},
				},
			},
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().NextID().Return(segmentID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				require.NoError(t, err)
				require.NotNil(t, segment)
				assert.Equal(t, segmentID, segment.ID)
				assert.Equal(t, editorID, segment.OwnerID)
				require.Len(t, segment.SubsegmentsParking, 2)
				assert.Equal(t, 0, segment.SubsegmentsParking[0].OrderNumber)
				assert.Equal(t, 1, segment.SubsegmentsParking[1].OrderNumber)
				assert.False(t, segment.CreatedAt.IsZero())
				assert.Equal(t, segment.CreatedAt, segment.ModifiedAt)
			},
		},
		{
			name: "error_when_anonymous",
			ctx:  anonymousContext(),
			data: service.SegmentData{Geometry: testGeometry},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
				assert.Nil(t, segment)
			},
		},
		{
			name: "error_when_geometry_too_short",
			ctx:  authenticatedContext(editor),
			data: service.SegmentData{Geometry: orb.LineString{{13.377, 52.516}}},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidGeometry)
				assert.Nil(t, segment)
			},
		},
		{
			name: "error_when_repo_fails",
			ctx:  authenticatedContext(editor),
			data: service.SegmentData{Geometry: testGeometry},
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().NextID().Return(segmentID)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				assert.Error(t, err)
				assert.Nil(t, segment)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newSegmentService(t, tc.segmentRepo)

			segment, err := srv.Create(tc.ctx, tc.data)
			tc.expect(t, segment, err)
		})
	}
}

func TestSegmentService_Update_Returns(t *testing.T) {
	ownerID := uuid.New()
	editorID := uuid.New()
	segmentID := domain.SegmentID{UUID: uuid.New()}

	storedSegment := func() *domain.Segment {
		return &domain.Segment{
			ID:         segmentID,
			OwnerID:    ownerID,
			Geometry:   testGeometry,
			CreatedAt:  time.Now().Add(-time.Hour),
			ModifiedAt: time.Now().Add(-time.Hour),
		}
	}

	tests := []struct {
		name        string
		ctx         context.Context
		segmentRepo func(ctrl *gomock.Controller) domain.SegmentRepository
		expect      func(t *testing.T, segment *domain.Segment, err error)
	}{
		{
			name: "success_reassigns_owner_to_editor",
			ctx: authenticatedContext(internalauth.Principal{
				UserID:          editorID,
				PermissionLevel: internalauth.PermissionLevelContributor,
			}),
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), segmentID).Return(storedSegment(), nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				require.NoError(t, err)
				require.NotNil(t, segment)
				assert.Equal(t, editorID, segment.OwnerID)
				assert.True(t, segment.ModifiedAt.After(segment.CreatedAt))
			},
		},
		{
			name: "success_for_owner_without_contributor_level",
			ctx: authenticatedContext(internalauth.Principal{
				UserID:          ownerID,
				PermissionLevel: internalauth.PermissionLevelGuest,
			}),
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), segmentID).Return(storedSegment(), nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
				return mock
			},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				require.NoError(t, err)
				require.NotNil(t, segment)
				assert.Equal(t, ownerID, segment.OwnerID)
			},
		},
		{
			name: "error_when_guest_is_not_owner",
			ctx: authenticatedContext(internalauth.Principal{
				UserID:          editorID,
				PermissionLevel: internalauth.PermissionLevelGuest,
			}),
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), segmentID).Return(storedSegment(), nil)
				return mock
			},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
				assert.Nil(t, segment)
			},
		},
		{
			name: "error_when_segment_not_found",
			ctx: authenticatedContext(internalauth.Principal{
				UserID:          editorID,
				PermissionLevel: internalauth.PermissionLevelContributor,
			}),
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), segmentID).Return(nil, domain.ErrSegmentNotFound)
				return mock
			},
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				assert.ErrorIs(t, err, service.ErrSegmentNotFound)
				assert.Nil(t, segment)
			},
		},
		{
			name: "error_when_anonymous",
			ctx:  anonymousContext(),
			expect: func(t *testing.T, segment *domain.Segment, err error) {
				assert.ErrorIs(t, err, pkgauth.ErrUnauthenticated)
				assert.Nil(t, segment)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newSegmentService(t, tc.segmentRepo)

			segment, err := srv.Update(tc.ctx, segmentID, service.SegmentData{Geometry: testGeometry})
			tc.expect(t, segment, err)
		})
	}
}

func TestSegmentService_Delete_Returns(t *testing.T) {
	ownerID := uuid.New()
	segmentID := domain.SegmentID{UUID: uuid.New()}

	storedSegment := &domain.Segment{
		ID:       segmentID,
		OwnerID:  ownerID,
		Geometry: testGeometry,
	}

	tests := []struct {
		name        string
		ctx         context.Context
		segmentRepo func(ctrl *gomock.Controller) domain.SegmentRepository
		expect      func(t *testing.T, err error)
	}{
		{
			name: "success_for_owner",
			ctx: authenticatedContext(internalauth.Principal{
				UserID:          ownerID,
				PermissionLevel: internalauth.PermissionLevelGuest,
			}),
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), segmentID).Return(storedSegment, nil)
				mock.EXPECT().Delete(gomock.Any(), segmentID).Return(nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error_when_guest_is_not_owner",
			ctx: authenticatedContext(internalauth.Principal{
				UserID:          uuid.New(),
				PermissionLevel: internalauth.PermissionLevelGuest,
			}),
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), segmentID).Return(storedSegment, nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
			},
		},
		{
			name: "error_when_segment_not_found",
			ctx: authenticatedContext(internalauth.Principal{
				UserID:          ownerID,
				PermissionLevel: internalauth.PermissionLevelContributor,
			}),
			segmentRepo: func(ctrl *gomock.Controller) domain.SegmentRepository {
				mock := segmentdomainmock.NewSegmentRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), segmentID).Return(nil, domain.ErrSegmentNotFound)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrSegmentNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newSegmentService(t, tc.segmentRepo)

			err := srv.Delete(tc.ctx, segmentID)
			tc.expect(t, err)
		})
	}
}
