package config

import "time"

// Defaults for the background passes and the snapshot cache.
const (
	DefaultTickInterval   = 30 * time.Second
	DefaultWeeklyInterval = time.Hour

	DefaultCacheSize = 128
	DefaultCacheTTL  = 15 * time.Minute
)
