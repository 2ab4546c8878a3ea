package core

import "time"

// Server defaults
const (
	DefaultPort    = "7860"
	DefaultGinMode = "release"
)

// HTTP client config constants
const (
	HTTPMaxIdleConns          = 100
	HTTPMaxIdleConnsPerHost   = 10
	HTTPMaxConnsPerHost       = 20
	HTTPIdleConnTimeout       = 90 * time.Second
	HTTPTLSHandshakeTimeout   = 10 * time.Second
	HTTPResponseHeaderTimeout = 30 * time.Second
	HTTPExpectContinueTimeout = 5 * time.Second
	HTTPRequestTimeout        = 30 * time.Second
	HTTPMaxRedirects          = 10
)

// Cache config constants
const (
	CacheDefaultCapacity   = 100
	CacheCleanupInterval   = 5 * time.Minute
	DefaultCatalogCacheTTL = 10 * time.Minute
	CatalogCacheKey        = "catalog:current"
)

// Stats and persistence constants
const (
	SnapshotFilePath        = "data/snapshot.json"
	StatsFilePath           = "data/stats.json"
	MinSaveInterval         = 5 * time.Second
	HistoryBufferSize       = 1000
	FilePermissionReadWrite = 0o644
	DirPermission           = 0o755
)

// Placeholder inserted when a provider ends up with zero models.
const PlaceholderModelName = "No models available"

// Synthetic provider collecting models no heuristic could classify.
const (
	UnknownProviderID          = "other"
	UnknownProviderDescription = "Models that could not be matched to a known provider"
)

// HTTP header names
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
	CORSMaxAge        = "86400"
)

// Time display format
const TimeFormatDateTime = "2006-01-02 15:04:05"
