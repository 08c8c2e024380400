package cluster

import (
	sqlcluster "github.com/parkplatztransform/parkapi/data/sql/cluster"
	"github.com/parkplatztransform/parkapi/internal/cluster/app/service"
	"github.com/parkplatztransform/parkapi/internal/cluster/domain"
	"github.com/parkplatztransform/parkapi/internal/cluster/infra/http"
	clusterinfrasql "github.com/parkplatztransform/parkapi/internal/cluster/infra/sql"
	internalcmd "github.com/parkplatztransform/parkapi/internal/pkg/cmd"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
	"github.com/parkplatztransform/parkapi/pkg/lazy"
	"github.com/parkplatztransform/parkapi/pkg/sql"
)

type DependencyContainer struct {
	ClusterService lazy.Loader[service.Cluster]

	getClustersHandler lazy.Loader[http.GetClustersHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[internalcmd.SQLMigrations],
) DependencyContainer {
	clusterRepo := clusterRepositoryProvider(db, dbMigrations)
	clusterService := clusterServiceProvider(clusterRepo)

	return DependencyContainer{
		ClusterService: clusterService,
		getClustersHandler: lazy.New(func() (http.GetClustersHandler, error) {
			return http.NewGetClustersHandler(clusterService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.getClustersHandler.MustLoad())
}

func clusterRepositoryProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[internalcmd.SQLMigrations],
) lazy.Loader[domain.ClusterRepository] {
	return lazy.New(func() (domain.ClusterRepository, error) {
		dbMigrations.MustLoad().MustRegister(sqlcluster.Migrations)
		return clusterinfrasql.NewClusterRepository(sql.NewTransactionalClient(db.MustLoad())), nil
	})
}

func clusterServiceProvider(clusterRepo lazy.Loader[domain.ClusterRepository]) lazy.Loader[service.Cluster] {
	return lazy.New(func() (service.Cluster, error) {
		return service.NewCluster(clusterRepo.MustLoad()), nil
	})
}
