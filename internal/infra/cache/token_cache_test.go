package cache

import (
	"testing"

	"bastion/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheWithPrefix(t *testing.T, prefix string) *tokenCache {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.AppPrefix = prefix

	c, ok := NewTokenCache(nil, cfg, nil).(*tokenCache)
	require.True(t, ok)

	return c
}

func TestTokenCache_AccessKeyLayout(t *testing.T) {
	c := cacheWithPrefix(t, "bastion-dev")

	key := c.accessKey("abc123")

	assert.Equal(t, "bastion-dev-auth:token:abc123:access", key)
}

func TestTokenCache_AccessKeyIsolatesEnvironments(t *testing.T) {
	dev := cacheWithPrefix(t, "dev")
	prod := cacheWithPrefix(t, "prod")

	assert.NotEqual(t, dev.accessKey("same-hash"), prod.accessKey("same-hash"))
}
