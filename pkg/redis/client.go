package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/parkplatztransform/parkapi/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

// ErrKeyNotFound is returned by Get when the key is absent or expired.
var ErrKeyNotFound = errors.New("key not found")

type Config struct {
	Address           string
	Password          string
	ConnectionTimeout time.Duration
}

type Client interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close(ctx context.Context)
}

type client struct {
	impl   *redis.Client
	logger log.Logger
}

func NewClient(config *Config, logger log.Logger) (Client, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	impl := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Password: config.Password,
	})

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err := backoff.Retry(func() error {
		return impl.Ping(context.Background()).Err()
	}, eb)
	if err != nil {
		_ = impl.Close()
		return nil, fmt.Errorf("open redis connection: %w", err)
	}

	return &client{impl: impl, logger: logger}, nil
}

func (c *client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.impl.Set(ctx, key, value, ttl).Err()
}

func (c *client) SetIfNotExists(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	return c.impl.SetNX(ctx, key, value, ttl).Result()
}

func (c *client) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.impl.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (c *client) Delete(ctx context.Context, key string) error {
	return c.impl.Del(ctx, key).Err()
}

func (c *client) Close(ctx context.Context) {
	err := c.impl.Close()
	if err != nil {
		c.logger.WithError(err).Error(ctx, "failed to close redis connection")
	}
}
