package redis

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/user/app/session"
	pkgredis "github.com/parkplatztransform/parkapi/pkg/redis"
)

const sessionKeyPrefix = "session:"

type sessionStore struct {
	client pkgredis.Client
	expiry time.Duration
}

func NewSessionStore(client pkgredis.Client, expiry time.Duration) session.Store {
	return sessionStore{
		client: client,
		expiry: expiry,
	}
}

func (s sessionStore) Create(ctx context.Context, identity session.Identity) (string, error) {
	sessionID := newSessionID()
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("encode session identity: %w", err)
	}

	err = s.client.Set(ctx, sessionKeyPrefix+sessionID, payload, s.expiry)
	if err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return sessionID, nil
}

func (s sessionStore) Get(ctx context.Context, sessionID string) (*session.Identity, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID)
	if errors.Is(err, pkgredis.ErrKeyNotFound) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var identity session.Identity
	err = json.Unmarshal(payload, &identity)
	if err != nil {
		return nil, fmt.Errorf("decode session identity: %w", err)
	}

	return &identity, nil
}

func (s sessionStore) Delete(ctx context.Context, sessionID string) error {
	err := s.client.Delete(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func newSessionID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
