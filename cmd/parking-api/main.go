package main

import (
	"context"

	"github.com/parkplatztransform/parkapi/internal/cluster"
	"github.com/parkplatztransform/parkapi/internal/pkg/cmd"
	"github.com/parkplatztransform/parkapi/internal/segment"
	"github.com/parkplatztransform/parkapi/internal/user"
	userinfrahttp "github.com/parkplatztransform/parkapi/internal/user/infra/http"
	pkgcmd "github.com/parkplatztransform/parkapi/pkg/cmd"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
	"github.com/parkplatztransform/parkapi/pkg/worker"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	logger.Info(ctx, "app is starting")

	userContainer := user.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.Redis,
		infra.MessageBroker,
		infra.HTTPClientFactory,
	)
	segmentContainer := segment.NewDependencyContainer(infra.DB, infra.DBMigrations)
	clusterContainer := cluster.NewDependencyContainer(infra.DB, infra.DBMigrations)

	httpServer := cmd.MustInitHTTPServer(
		logger,
		pkghttp.WithAuth(
			userContainer.AuthProvider.MustLoad(),
			userinfrahttp.SessionTokenProvider(),
		),
	)
	userContainer.MustRegisterHTTPHandlers(httpServer)
	segmentContainer.MustRegisterHTTPHandlers(httpServer)
	clusterContainer.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "app is ready")
	worker.MustRunHub(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
