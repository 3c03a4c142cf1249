package session

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store. Sessions expire after
// ttl; every successful Get refreshes the expiry (idle timeout semantics).
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := newToken()
	if err := s.client.Set(ctx, sessionKey(token), userID.String(), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}

	// The session still resolves if the refresh fails, but a failing Redis
	// would quietly stop extending idle timeouts, so it is worth a log line.
	if err := s.client.Expire(ctx, sessionKey(token), s.ttl).Err(); err != nil {
		log.Printf("failed to refresh session ttl: %v", err)
	}
	return userID, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return "session:" + token
}
