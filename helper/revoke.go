package helper

import (
	"context"
	"time"

	"nomad_admin/config"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// Revoker remembers logged-out sessions.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	Revoked(ctx context.Context, jti string) (bool, error)
}

// Revocations is nil when no redis is configured; logout then only clears
// the cookie.
var Revocations Revoker

type RedisRevoker struct {
	Client *redis.Client
}

func revokedKey(jti string) string { return "session:revoked:" + jti }

func (r *RedisRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.Client.Set(ctx, revokedKey(jti), 1, ttl).Err()
}

func (r *RedisRevoker) Revoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.Client.Exists(ctx, revokedKey(jti)).Result()
	return n > 0, err
}

// InitRedis connects to REDIS_ADDR and installs the revocation list.
func InitRedis(ctx context.Context) *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Info("REDIS_ADDR not set, session revocation disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       config.Int("REDIS_DB", 0),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("redis at %s unreachable, session revocation disabled: %v", addr, err)
		_ = client.Close()
		return nil
	}
	Revocations = &RedisRevoker{Client: client}
	log.Infof("session revocation backed by redis at %s", addr)
	return client
}
