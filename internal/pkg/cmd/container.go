package cmd

import (
	"context"
	"os"

	pkgcmd "github.com/parkplatztransform/parkapi/pkg/cmd"
	"github.com/parkplatztransform/parkapi/pkg/env"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
	"github.com/parkplatztransform/parkapi/pkg/lazy"
	"github.com/parkplatztransform/parkapi/pkg/log"
	"github.com/parkplatztransform/parkapi/pkg/message"
	"github.com/parkplatztransform/parkapi/pkg/pulsar"
	"github.com/parkplatztransform/parkapi/pkg/redis"
	"github.com/parkplatztransform/parkapi/pkg/sql"
)

const ServiceName = "parkapi"

type InfrastructureContainer struct {
	HTTPClientFactory lazy.Loader[pkghttp.ClientFactory]
	MessageBroker     lazy.Loader[message.Broker]
	DB                lazy.Loader[sql.Database]
	DBMigrations      lazy.Loader[SQLMigrations]
	Redis             lazy.Loader[redis.Client]
	Logger            lazy.Loader[log.Logger]

	messageBrokerImpl lazy.Loader[*pulsar.MessageBroker]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	logger := loggerProvider()

	msgBrokerImpl := pulsarMessageBrokerProvider(logger)
	msgBroker := lazy.New(func() (message.Broker, error) { return msgBrokerImpl.Load() })
	db := sqlDatabaseProvider(logger)

	return &InfrastructureContainer{
		HTTPClientFactory: httpClientFactoryProvider(logger),
		MessageBroker:     msgBroker,
		DB:                db,
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		Redis:             redisProvider(logger),
		Logger:            logger,
		messageBrokerImpl: msgBrokerImpl,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	pkgcmd.HandleAppPanic(ctx, i.Logger.MustLoad())

	i.messageBrokerImpl.IfLoaded(func(broker *pulsar.MessageBroker) { broker.Close() })
	i.Redis.IfLoaded(func(client redis.Client) { client.Close(ctx) })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return pkgcmd.InitLogger(), nil
	})
}

func MustInitHTTPServer(logger log.Logger, extraOpts ...pkghttp.ServerOption) pkghttp.Server {
	address := os.Getenv("SERVICE_ADDRESS")
	if address == "" {
		address = pkghttp.DefaultServerAddress
	}

	opts := []pkghttp.ServerOption{
		pkghttp.WithHealthCheck(nil),
		pkghttp.WithLogging(logger, log.LevelInfo, log.LevelError),
	}
	if allowedOrigins := env.Must(env.ParseOptional[string]("CORS_ALLOWED_ORIGINS")); allowedOrigins != nil {
		opts = append(opts, pkghttp.WithCORSHandler(*allowedOrigins))
	}
	opts = append(opts, extraOpts...)

	return pkghttp.NewServer(address, opts...)
}

func httpClientFactoryProvider(logger lazy.Loader[log.Logger]) lazy.Loader[pkghttp.ClientFactory] {
	return lazy.New(func() (pkghttp.ClientFactory, error) {
		return pkghttp.NewClientFactory(
			pkghttp.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}

func pulsarMessageBrokerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[*pulsar.MessageBroker] {
	return lazy.New(func() (*pulsar.MessageBroker, error) {
		return pkgcmd.MustInitPulsarMessageBroker(logger.MustLoad()), nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func sqlDatabaseProvider(logger lazy.Loader[log.Logger]) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		return pkgcmd.MustInitSQL(logger.MustLoad()), nil
	})
}

func redisProvider(logger lazy.Loader[log.Logger]) lazy.Loader[redis.Client] {
	return lazy.New(func() (redis.Client, error) {
		return pkgcmd.MustInitRedis(logger.MustLoad()), nil
	})
}
