package service

import (
	"context"
	"fmt"

	"github.com/parkplatztransform/parkapi/internal/cluster/domain"
)

type (
	Cluster interface {
		GetAll(ctx context.Context) ([]domain.Cluster, error)
	}

	clusterService struct {
		clusterRepo domain.ClusterRepository
	}
)

func NewCluster(clusterRepo domain.ClusterRepository) Cluster {
	return &clusterService{clusterRepo: clusterRepo}
}

func (s *clusterService) GetAll(ctx context.Context) ([]domain.Cluster, error) {
	clusters, err := s.clusterRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find clusters: %w", err)
	}

	return clusters, nil
}
