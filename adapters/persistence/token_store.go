package persistence

import (
	"context"
	"time"

	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps the IDs of revoked access tokens until their natural
// expiry, so logout takes effect before the JWT runs out.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func revokedKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

func (s *RedisTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return apperror.NewInternal("failed to revoke token", err)
	}
	return nil
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, apperror.NewInternal("failed to check token revocation", err)
	}
	return n > 0, nil
}
