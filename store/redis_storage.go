package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps session auth data in Redis under
// session:<id>:authToken and session:<id>:userData.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func (r *RedisStorage) Token(ctx context.Context, sessionID string) (string, error) {
	return r.get(ctx, sessionKey(sessionID, KeyAuthToken))
}

func (r *RedisStorage) UserData(ctx context.Context, sessionID string) (string, error) {
	return r.get(ctx, sessionKey(sessionID, KeyUserData))
}

func (r *RedisStorage) SaveAuth(ctx context.Context, sessionID, token, userData string) error {
	if err := r.client.Set(ctx, sessionKey(sessionID, KeyAuthToken), token, r.ttl).Err(); err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(sessionID, KeyUserData), userData, r.ttl).Err()
}

func (r *RedisStorage) ClearAuth(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx,
		sessionKey(sessionID, KeyAuthToken),
		sessionKey(sessionID, KeyUserData),
	).Err()
}

// get treats a missing key as an empty value, not an error.
func (r *RedisStorage) get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func sessionKey(sessionID, field string) string {
	return "session:" + sessionID + ":" + field
}
