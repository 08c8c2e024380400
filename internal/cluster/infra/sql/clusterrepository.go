package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/parkplatztransform/parkapi/internal/cluster/domain"
	pkgsql "github.com/parkplatztransform/parkapi/pkg/sql"
)

type clusterRepository struct {
	db pkgsql.Client
}

func NewClusterRepository(db pkgsql.Client) domain.ClusterRepository {
	return clusterRepository{db: db}
}

func (r clusterRepository) FindAll(ctx context.Context) ([]domain.Cluster, error) {
	query, args, err := sq.
		Select("id", "name", "count", "ST_AsGeoJSON(geometry) as geometry").
		From("clusters").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxCluster
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	clusters := make([]domain.Cluster, 0, len(rows))
	for _, row := range rows {
		geometry, err := geojson.UnmarshalGeometry(row.Geometry)
		if err != nil {
			return nil, fmt.Errorf("decode cluster %v geometry: %w", row.ID, err)
		}

		clusters = append(clusters, domain.Cluster{
			ID:       row.ID,
			Name:     row.Name,
			Count:    row.Count,
			Geometry: geometry.Geometry(),
		})
	}

	return clusters, nil
}

type sqlxCluster struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Count    int       `db:"count"`
	Geometry []byte    `db:"geometry"`
}
