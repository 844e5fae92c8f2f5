// File: database/repository/profile/cache.go
package profileRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"staffplan/models"
	"staffplan/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedProfileRepo is a read-through Redis cache in front of a
// ProfileRepository. Profiles change at most once a season, so a short TTL is
// plenty.
type CachedProfileRepo struct {
	Inner ProfileRepository
	Cache *redis.Client
}

// NewCachedProfileRepo wraps the given repository with the shared cache client.
func NewCachedProfileRepo(inner ProfileRepository) *CachedProfileRepo {
	return &CachedProfileRepo{Inner: inner, Cache: utils.GetCacheClient()}
}

func (r *CachedProfileRepo) MonthProfile(ctx context.Context, month int, robust bool) ([]models.ProfileSlice, error) {
	key := fmt.Sprintf("%smonth:%d:robust:%t", utils.ProfileCachePrefix, month, robust)

	if data, err := r.Cache.Get(ctx, key).Result(); err == nil {
		var slices []models.ProfileSlice
		if err := json.Unmarshal([]byte(data), &slices); err == nil {
			return slices, nil
		}
		// Corrupt entry, fall through to the source.
		utils.GetLogger().Warn("dropping unreadable profile cache entry", zap.String("key", key))
		r.Cache.Del(ctx, key)
	}

	slices, err := r.Inner.MonthProfile(ctx, month, robust)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(slices); err == nil {
		if err := r.Cache.Set(ctx, key, data, utils.ProfileCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache month profile", zap.String("key", key), zap.Error(err))
		}
	}
	return slices, nil
}

func (r *CachedProfileRepo) YearDayAverages(ctx context.Context, robust bool) (map[int]map[int]float64, error) {
	key := fmt.Sprintf("%sdayavg:robust:%t", utils.ProfileCachePrefix, robust)

	if data, err := r.Cache.Get(ctx, key).Result(); err == nil {
		var avgs map[int]map[int]float64
		if err := json.Unmarshal([]byte(data), &avgs); err == nil {
			return avgs, nil
		}
		r.Cache.Del(ctx, key)
	}

	avgs, err := r.Inner.YearDayAverages(ctx, robust)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(avgs); err == nil {
		r.Cache.Set(ctx, key, data, utils.ProfileCacheTTL)
	}
	return avgs, nil
}

func (r *CachedProfileRepo) YearRevenue(ctx context.Context, year int) (float64, error) {
	// Single-document lookup, not worth a cache round trip.
	return r.Inner.YearRevenue(ctx, year)
}
