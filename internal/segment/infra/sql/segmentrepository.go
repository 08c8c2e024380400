package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	pkgsql "github.com/parkplatztransform/parkapi/pkg/sql"
)

type segmentRepository struct {
	db pkgsql.Client
}

func NewSegmentRepository(db pkgsql.Client) domain.SegmentRepository {
	return segmentRepository{db: db}
}

func (r segmentRepository) NextID() domain.SegmentID {
	return domain.SegmentID{UUID: uuid.New()}
}

func (r segmentRepository) Store(ctx context.Context, segment *domain.Segment) error {
	geometryJSON, err := encodeGeometry(segment.Geometry)
	if err != nil {
		return err
	}

	query, args, err := sq.
		Insert("segments").
		Columns("id", "owner_id", "further_comments", "data_source", "geometry", "created_at", "modified_at").
		Values(
			segment.ID,
			segment.OwnerID,
			segment.FurtherComments,
			segment.DataSource,
			sq.Expr("ST_SetSRID(ST_GeomFromGeoJSON(?), 4326)", geometryJSON),
			segment.CreatedAt,
			segment.ModifiedAt,
		).
		Suffix(`on conflict (id) do update set
			owner_id = excluded.owner_id,
			further_comments = excluded.further_comments,
			data_source = excluded.data_source,
			geometry = excluded.geometry,
			modified_at = excluded.modified_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return r.storeSubsegments(ctx, segment)
}

func (r segmentRepository) FindByID(ctx context.Context, id domain.SegmentID) (*domain.Segment, error) {
	query, args, err := buildFindQuery().Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxSegment
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSegmentNotFound
	}
	if err != nil {
		return nil, err
	}

	segments, err := r.attachSubsegments(ctx, []sqlxSegment{row})
	if err != nil {
		return nil, err
	}

	return &segments[0], nil
}

func (r segmentRepository) Find(ctx context.Context, spec domain.FindSegmentSpecification) ([]domain.Segment, error) {
	qb := buildFindQuery()
	if len(spec.BBox) > 0 {
		bboxJSON, err := encodeBoundingBox(spec.BBox)
		if err != nil {
			return nil, err
		}
		qb = qb.Where(sq.Expr("ST_Intersects(ST_SetSRID(ST_GeomFromGeoJSON(?), 4326), geometry)", bboxJSON))
	}
	if spec.ModifiedAfter != nil {
		qb = qb.Where(sq.Gt{"modified_at": *spec.ModifiedAfter})
	}
	if len(spec.ExcludeIDs) > 0 {
		excluded := sq.Sqlizer(sq.NotEq{"id": spec.ExcludeIDs})
		if spec.IncludeIfModifiedAfter != nil {
			excluded = sq.Or{excluded, sq.Gt{"modified_at": *spec.IncludeIfModifiedAfter}}
		}
		qb = qb.Where(excluded)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxSegment
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	if !spec.WithDetails {
		return convertSegments(rows, nil, nil)
	}

	return r.attachSubsegments(ctx, rows)
}

func (r segmentRepository) Delete(ctx context.Context, id domain.SegmentID) error {
	for _, table := range []string{"subsegments_parking", "subsegments_non_parking"} {
		query, args, err := sq.Delete(table).Where(sq.Eq{"segment_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	query, args, err := sq.Delete("segments").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r segmentRepository) storeSubsegments(ctx context.Context, segment *domain.Segment) error {
	for _, table := range []string{"subsegments_parking", "subsegments_non_parking"} {
		query, args, err := sq.Delete(table).Where(sq.Eq{"segment_id": segment.ID}).ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if len(segment.SubsegmentsParking) > 0 {
		qb := sq.
			Insert("subsegments_parking").
			Columns(
				"id", "segment_id", "order_number", "length_in_meters", "car_count", "quality",
				"fee", "street_location", "marked", "alignment", "alternative_usage_reason",
				"user_restriction", "user_restriction_reason",
				"time_constraint", "time_constraint_reason",
				"duration_constraint", "duration_constraint_reason",
			)
		for _, sub := range segment.SubsegmentsParking {
			qb = qb.Values(
				uuid.New(), segment.ID, sub.OrderNumber, sub.LengthInMeters, sub.CarCount, sub.Quality,
				sub.Fee, sub.StreetLocation, sub.Marked, sub.Alignment, sub.AlternativeUsageReason,
				sub.UserRestriction, sub.UserRestrictionReason,
				sub.TimeConstraint, sub.TimeConstraintReason,
				sub.DurationConstraint, sub.DurationConstraintReason,
			)
		}

		query, args, err := qb.ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if len(segment.SubsegmentsNonParking) > 0 {
		qb := sq.
			Insert("subsegments_non_parking").
			Columns("id", "segment_id", "order_number", "length_in_meters", "quality", "no_parking_reasons")
		for _, sub := range segment.SubsegmentsNonParking {
			qb = qb.Values(
				uuid.New(), segment.ID, sub.OrderNumber, sub.LengthInMeters, sub.Quality,
				pq.Array(noParkingReasonsToStrings(sub.NoParkingReasons)),
			)
		}

		query, args, err := qb.ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return nil
}

func (r segmentRepository) attachSubsegments(ctx context.Context, rows []sqlxSegment) ([]domain.Segment, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	segmentIDs := make([]domain.SegmentID, 0, len(rows))
	for _, row := range rows {
		segmentIDs = append(segmentIDs, row.ID)
	}

	query, args, err := sq.
		Select(
			"segment_id", "order_number", "length_in_meters", "car_count", "quality",
			"fee", "street_location", "marked", "alignment", "alternative_usage_reason",
			"user_restriction", "user_restriction_reason",
			"time_constraint", "time_constraint_reason",
			"duration_constraint", "duration_constraint_reason",
		).
		From("subsegments_parking").
		Where(sq.Eq{"segment_id": segmentIDs}).
		OrderBy("segment_id", "order_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var parkingRows []sqlxSubsegmentParking
	if err = r.db.SelectContext(ctx, &parkingRows, query, args...); err != nil {
		return nil, err
	}

	query, args, err = sq.
		Select("segment_id", "order_number", "length_in_meters", "quality", "no_parking_reasons").
		From("subsegments_non_parking").
		Where(sq.Eq{"segment_id": segmentIDs}).
		OrderBy("segment_id", "order_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var nonParkingRows []sqlxSubsegmentNonParking
	if err = r.db.SelectContext(ctx, &nonParkingRows, query, args...); err != nil {
		return nil, err
	}

	return convertSegments(rows, parkingRows, nonParkingRows)
}

func buildFindQuery() sq.SelectBuilder {
	return sq.
		Select(
			"id", "owner_id", "further_comments", "data_source",
			"ST_AsGeoJSON(geometry) as geometry", "created_at", "modified_at",
		).
		From("segments").
		OrderBy("created_at")
}
