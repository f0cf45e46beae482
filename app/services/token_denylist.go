package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked session token IDs until their natural expiry
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NoopTokenDenylist never revokes anything; sessions are purely stateless
type NoopTokenDenylist struct{}

func NewNoopTokenDenylist() TokenDenylist {
	return NoopTokenDenylist{}
}

func (NoopTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return nil
}

func (NoopTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}

// RedisTokenDenylist stores one key per revoked token ID with a TTL matching the token's remaining life
type RedisTokenDenylist struct {
	rc     *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisTokenDenylist creates a redis-backed denylist. Keys are "<prefix>:revoked:<jti>".
func NewRedisTokenDenylist(rc *redis.Client, prefix string) TokenDenylist {
	return &RedisTokenDenylist{rc: rc, prefix: prefix, now: time.Now}
}

func (d *RedisTokenDenylist) key(tokenID string) string {
	if d.prefix == "" {
		return "revoked:" + tokenID
	}
	return d.prefix + ":revoked:" + tokenID
}

// Revoke denylists tokenID. Tokens that have already expired are skipped.
func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errors.New("token ID is required")
	}
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.rc.Set(ctx, d.key(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rc.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
