package main

import (
	"context"

	"github.com/parkplatztransform/parkapi/internal/pkg/cmd"
	"github.com/parkplatztransform/parkapi/internal/user"
	pkgcmd "github.com/parkplatztransform/parkapi/pkg/cmd"
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
	listeners := userContainer.MustInitTaskConsumers(infra.MessageBroker.MustLoad(), logger)

	logger.Info(ctx, "app is ready")
	worker.MustRunHub(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		listeners...,
	)
}
