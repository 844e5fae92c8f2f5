// File: utils/constants.go
package utils

import "time"

// ProfileCachePrefix is the prefix used for Redis month-profile cache keys.
const ProfileCachePrefix = "profile:"

// ProfileCacheTTL is the time-to-live for cached month profiles.
const ProfileCacheTTL = 30 * time.Minute

// PlanCachePrefix is the prefix used for precomputed month-plan cache keys.
const PlanCachePrefix = "plan:"
