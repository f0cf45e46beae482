package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopTokenDenylist(t *testing.T) {
	ctx := context.Background()
	d := NewNoopTokenDenylist()

	require.NoError(t, d.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	revoked, err := d.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenDenylistKey(t *testing.T) {
	d := &RedisTokenDenylist{prefix: "lead-desk"}
	assert.Equal(t, "lead-desk:revoked:abc", d.key("abc"))

	d.prefix = ""
	assert.Equal(t, "revoked:abc", d.key("abc"))
}

// TestRedisTokenDenylist runs against a live redis when TEST_REDIS_URL is set
func TestRedisTokenDenylist(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rc := redis.NewClient(opt)
	defer rc.Close()

	ctx := context.Background()
	d := NewRedisTokenDenylist(rc, "lead-desk-test")
	jti := uuid.NewString()

	revoked, err := d.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, jti, time.Now().Add(time.Minute)))
	revoked, err = d.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := rc.TTL(ctx, "lead-desk-test:revoked:"+jti).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	// Already-expired tokens are not stored
	expired := uuid.NewString()
	require.NoError(t, d.Revoke(ctx, expired, time.Now().Add(-time.Minute)))
	revoked, err = d.IsRevoked(ctx, expired)
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.Error(t, d.Revoke(ctx, "", time.Now().Add(time.Minute)))
}
