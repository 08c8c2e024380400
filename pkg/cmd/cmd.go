package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/parkplatztransform/parkapi/pkg/env"
	"github.com/parkplatztransform/parkapi/pkg/log"
	"github.com/parkplatztransform/parkapi/pkg/pulsar"
	"github.com/parkplatztransform/parkapi/pkg/redis"
	"github.com/parkplatztransform/parkapi/pkg/sig"
	"github.com/parkplatztransform/parkapi/pkg/sql"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

func InitLogger() log.Logger {
	logLevelStr, err := env.Parse[string]("LOG_LEVEL")
	if err != nil {
		return log.New(log.LevelInfo)
	}

	logLevel, ok := logLevelMap[logLevelStr]
	if !ok {
		logLevel = log.LevelInfo
	}

	return log.New(logLevel)
}

func HandleAppPanic(ctx context.Context, logger log.Logger) {
	msg := recover()
	if msg == nil {
		return
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	os.Exit(1)
}

func TermSignalAwaiter(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-sig.TermSignals():
	}

	return nil
}

func MustInitSQL(logger log.Logger) sql.Database {
	sqlConfig := &sql.Config{
		DSN: sql.DSN{
			User:     env.Must(env.Parse[string]("SQL_USER")),
			Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
			Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
			Database: env.Must(env.Parse[string]("SQL_DATABASE")),
		},
	}
	sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
	if sqlConnTimeout != nil {
		sqlConfig.ConnectionTimeout = *sqlConnTimeout
	}

	db, err := sql.NewDatabase(sqlConfig, logger)
	if err != nil {
		panic(fmt.Errorf("open sql connection: %w", err))
	}

	return db
}

func MustInitRedis(logger log.Logger) redis.Client {
	redisConfig := &redis.Config{
		Address:  env.Must(env.Parse[string]("REDIS_ADDRESS")),
		Password: env.Must(env.Parse[string]("REDIS_PASSWORD")),
	}
	redisConnTimeout := env.Must(env.ParseOptional[time.Duration]("REDIS_CONNECTION_TIMEOUT"))
	if redisConnTimeout != nil {
		redisConfig.ConnectionTimeout = *redisConnTimeout
	}

	client, err := redis.NewClient(redisConfig, logger)
	if err != nil {
		panic(fmt.Errorf("open redis connection: %w", err))
	}

	return client
}

func MustInitPulsarMessageBroker(optionalLogger log.Logger) *pulsar.MessageBroker {
	config := pulsar.Config{
		Address: env.Must(env.Parse[string]("PULSAR_ADDRESS")),
	}
	connTimeout := env.Must(env.ParseOptional[time.Duration]("PULSAR_CONNECTION_TIMEOUT"))
	if connTimeout != nil {
		config.ConnectionTimeout = *connTimeout
	}

	if optionalLogger == nil {
		optionalLogger = log.New(log.LevelDisabled)
	}

	messageBroker, err := pulsar.NewMessageBroker(config, optionalLogger)
	if err != nil {
		panic(fmt.Errorf("open pulsar connection: %w", err))
	}

	return messageBroker
}
