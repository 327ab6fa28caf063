package shared

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"tripdesk/shared/cache"
	"tripdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a cache prefix with an entity identifier.
func BuildCacheKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// BuildCacheKeyWithQuery derives a stable cache key from pagination and
// filtering parameters so every distinct listing query caches separately.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	payload, err := json.Marshal(struct {
		Params dto.QueryParams
		Filter dto.FilterGroup
	}{params, filter})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key query")

		return prefix
	}

	sum := sha256.Sum256(payload)

	return fmt.Sprintf("%s:%x", prefix, sum[:8])
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
