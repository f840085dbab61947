// File: utils/constants.go
package utils

import "time"

// SlotCachePrefix is the prefix used for Redis candidate-slot cache keys.
const SlotCachePrefix = "slots:"

// SlotCacheTTL is the time-to-live for candidate-slot cache entries.
const SlotCacheTTL = 10 * time.Minute

// LookaheadDays is the window annotated with availability dots on patient calendars.
const LookaheadDays = 90
