package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth"
	"github.com/parkplatztransform/parkapi/internal/user/app/session"
	userinfraredis "github.com/parkplatztransform/parkapi/internal/user/infra/redis"
	pkgredis "github.com/parkplatztransform/parkapi/pkg/redis"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := userinfraredis.NewSessionStore(newFakeRedis(), time.Hour)

	identity := session.Identity{
		UserID:          uuid.New(),
		Email:           "someone@example.com",
		PermissionLevel: auth.PermissionLevelContributor,
	}

	sessionID, err := store.Create(ctx, identity)
	require.NoError(t, err)
	assert.Len(t, sessionID, 32)

	got, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, identity, *got)

	secondID, err := store.Create(ctx, identity)
	require.NoError(t, err)
	assert.NotEqual(t, sessionID, secondID)

	require.NoError(t, store.Delete(ctx, sessionID))

	_, err = store.Get(ctx, sessionID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionStore_Get_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := userinfraredis.NewSessionStore(client, time.Hour)

	sessionID, err := store.Create(ctx, session.Identity{
		UserID: uuid.New(),
		Email:  "someone@example.com",
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, sessionID)
	require.NoError(t, err)

	client.advance(time.Hour + time.Second)

	_, err = store.Get(ctx, sessionID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionStore_Create_StoresSnakeCaseSnapshot(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := userinfraredis.NewSessionStore(client, time.Hour)

	sessionID, err := store.Create(ctx, session.Identity{
		UserID:          uuid.New(),
		Email:           "someone@example.com",
		PermissionLevel: auth.PermissionLevelContributor,
	})
	require.NoError(t, err)

	payload, err := client.Get(ctx, "session:"+sessionID)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"permission_level":1`)
	assert.Contains(t, string(payload), `"email":"someone@example.com"`)
}

func TestSessionStore_Get_UnknownSession(t *testing.T) {
	store := userinfraredis.NewSessionStore(newFakeRedis(), time.Hour)

	_, err := store.Get(context.Background(), "unknown-session-id")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestNonceStorage_Burn_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	storage := userinfraredis.NewNonceStorage(newFakeRedis())

	require.NoError(t, storage.Burn(ctx, "some-nonce", time.Hour))
	assert.ErrorIs(t, storage.Burn(ctx, "some-nonce", time.Hour), onetimeauth.ErrNonceAlreadyUsed)
	require.NoError(t, storage.Burn(ctx, "another-nonce", time.Hour))
}

func TestNonceStorage_Burn_ReleasesAfterTTL(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	storage := userinfraredis.NewNonceStorage(client)

	require.NoError(t, storage.Burn(ctx, "some-nonce", time.Minute))
	assert.ErrorIs(t, storage.Burn(ctx, "some-nonce", time.Minute), onetimeauth.ErrNonceAlreadyUsed)

	client.advance(2 * time.Minute)

	require.NoError(t, storage.Burn(ctx, "some-nonce", time.Minute))
}

// fakeRedis keeps values with their expiry against a controllable clock, so
// TTL behavior is testable without waiting.
type fakeRedis struct {
	now    time.Time
	values map[string]fakeRedisValue
}

type fakeRedisValue struct {
	data      []byte
	expiresAt time.Time
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		now:    time.Now(),
		values: make(map[string]fakeRedisValue),
	}
}

func (f *fakeRedis) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fakeRedis) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	f.values[key] = fakeRedisValue{data: value, expiresAt: f.expiresAt(ttl)}
	return nil
}

func (f *fakeRedis) SetIfNotExists(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if _, ok := f.alive(key); ok {
		return false, nil
	}
	f.values[key] = fakeRedisValue{data: value, expiresAt: f.expiresAt(ttl)}
	return true, nil
}

func (f *fakeRedis) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := f.alive(key)
	if !ok {
		return nil, pkgredis.ErrKeyNotFound
	}
	return value.data, nil
}

func (f *fakeRedis) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedis) Close(context.Context) {}

func (f *fakeRedis) alive(key string) (fakeRedisValue, bool) {
	value, ok := f.values[key]
	if !ok {
		return fakeRedisValue{}, false
	}
	if !value.expiresAt.IsZero() && f.now.After(value.expiresAt) {
		delete(f.values, key)
		return fakeRedisValue{}, false
	}
	return value, true
}

func (f *fakeRedis) expiresAt(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return f.now.Add(ttl)
}
