package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const Name = "cluster"

type (
	// Cluster is a named district with the count of parking subsegments
	// recorded inside it.
	Cluster struct {
		ID       uuid.UUID
		Name     string
		Count    int
		Geometry orb.Geometry
	}

	ClusterRepository interface {
		FindAll(context.Context) ([]Cluster, error)
	}
)
