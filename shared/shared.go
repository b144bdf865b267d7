package shared

import (
	"context"
	"resto/shared/cache"
	"resto/shared/dto"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByDay matches rows whose field falls inside [start, end).
func FilterByDay(field, table string, start, end time.Time) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  "day_start",
				Field:    field,
				Value:    start,
				Operator: dto.FilterOperatorGreaterEq,
				Table:    table,
			},
			dto.Filter{
				ArgName:  "day_end",
				Field:    field,
				Value:    end,
				Operator: dto.FilterOperatorLess,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the non-empty parts with ':'.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

// InvalidateCaches clears every pattern and returns the first error. Remaining patterns are still cleared.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, patterns ...string) error {
	var firstErr error

	for _, pattern := range patterns {
		if err := redisCache.Clear(ctx, pattern); err != nil {
			log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate cache")

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
