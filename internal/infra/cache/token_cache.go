package cache

import (
	"context"
	"fmt"

	"bastion/config"
	"bastion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// accessKeyTemplate is the cache key layout: {appPrefix}-auth:token:{hash}:access.
// The app prefix keeps environments sharing one Redis from colliding.
const accessKeyTemplate = "%s-auth:token:%s:access"

// tokenCache is the Redis implementation of the TokenCache interface.
// Entries carry the access token TTL so an abandoned session expires on
// its own without a cleanup job.
type tokenCache struct {
	client       *redis.Client
	appPrefix    string
	tokenService service.TokenService
}

// NewTokenCache is the constructor for tokenCache.
func NewTokenCache(client *redis.Client, cfg *config.Config, tokenService service.TokenService) service.TokenCache {
	return &tokenCache{
		client:       client,
		appPrefix:    cfg.Env.AppPrefix,
		tokenService: tokenService,
	}
}

func (c *tokenCache) accessKey(hash string) string {
	return fmt.Sprintf(accessKeyTemplate, c.appPrefix, hash)
}

// SetAccessHash records a rotation hash as valid for the given user.
func (c *tokenCache) SetAccessHash(ctx context.Context, hash string, userID uuid.UUID) error {
	key := c.accessKey(hash)
	if err := c.client.Set(ctx, key, userID.String(), c.tokenService.AccessTokenTTL()).Err(); err != nil {
		return errors.Wrap(err, "failed to set token cache entry")
	}

	return nil
}

// GetAccessHash resolves a rotation hash to the user it belongs to.
func (c *tokenCache) GetAccessHash(ctx context.Context, hash string) (uuid.UUID, error) {
	val, err := c.client.Get(ctx, c.accessKey(hash)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, service.ErrCacheMiss
	}
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to get token cache entry")
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		// A corrupt entry is treated as revoked rather than trusted.
		return uuid.Nil, service.ErrCacheMiss
	}

	return userID, nil
}

// DeleteAccessHash removes a rotation hash, revoking the session.
func (c *tokenCache) DeleteAccessHash(ctx context.Context, hash string) error {
	if err := c.client.Del(ctx, c.accessKey(hash)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete token cache entry")
	}

	return nil
}
