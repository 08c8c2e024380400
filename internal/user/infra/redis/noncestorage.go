package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth"
	pkgredis "github.com/parkplatztransform/parkapi/pkg/redis"
)

const nonceKeyPrefix = "nonce:"

type nonceStorage struct {
	client pkgredis.Client
}

func NewNonceStorage(client pkgredis.Client) onetimeauth.NonceStorage {
	return nonceStorage{client: client}
}

func (s nonceStorage) Burn(ctx context.Context, nonce string, ttl time.Duration) error {
	stored, err := s.client.SetIfNotExists(ctx, nonceKeyPrefix+nonce, []byte("1"), ttl)
	if err != nil {
		return fmt.Errorf("burn nonce: %w", err)
	}
	if !stored {
		return onetimeauth.ErrNonceAlreadyUsed
	}
	return nil
}
