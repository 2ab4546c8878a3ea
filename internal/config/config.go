package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
	"github.com/cfugett/ai-model-info-viewer/internal/util"
)

// Built-in source URLs for the upstream capability document, tried in order.
// SOURCE_URLS overrides the whole list.
var defaultSourceURLs = []string{
	"https://raw.githubusercontent.com/voideditor/void/main/src/vs/workbench/contrib/void/common/modelCapabilities.ts",
	"https://raw.githubusercontent.com/voideditor/void/master/src/vs/workbench/contrib/void/common/modelCapabilities.ts",
}

// ServerConfig server configuration
type ServerConfig struct {
	Port               string
	GinMode            string
	SourceURLs         []string
	RefreshInterval    time.Duration
	RateLimit          int
	CORSAllowOrigin    string
	HTTPClientSettings HTTPClientSettings
	Storage            core.StorageInterface
	Logger             core.Logger
}

// HTTPClientSettings HTTP client configuration
type HTTPClientSettings struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	RequestTimeout      time.Duration
	MaxRedirects        int
}

// DefaultHTTPClientSettings default HTTP client settings
func DefaultHTTPClientSettings() HTTPClientSettings {
	return HTTPClientSettings{
		MaxIdleConns:        core.HTTPMaxIdleConns,
		MaxIdleConnsPerHost: core.HTTPMaxIdleConnsPerHost,
		MaxConnsPerHost:     core.HTTPMaxConnsPerHost,
		IdleConnTimeout:     core.HTTPIdleConnTimeout,
		TLSHandshakeTimeout: core.HTTPTLSHandshakeTimeout,
		RequestTimeout:      core.HTTPRequestTimeout,
		MaxRedirects:        core.HTTPMaxRedirects,
	}
}

// LoadServerConfigFromEnv loads server config from environment variables
func LoadServerConfigFromEnv(logger core.Logger) (ServerConfig, error) {
	sourceURLs := util.ParseEnvList(os.Getenv("SOURCE_URLS"))
	if len(sourceURLs) == 0 {
		sourceURLs = defaultSourceURLs
		logger.Info("SOURCE_URLS not set, using %d built-in source URLs", len(sourceURLs))
	} else {
		logger.Info("Loaded %d source URLs", len(sourceURLs))
	}

	refreshInterval := core.DefaultCatalogCacheTTL
	if envInterval := os.Getenv("REFRESH_INTERVAL"); envInterval != "" {
		parsed, err := time.ParseDuration(envInterval)
		if err != nil || parsed <= 0 {
			logger.Warn("Invalid REFRESH_INTERVAL value '%s', using default %s", envInterval, refreshInterval)
		} else {
			refreshInterval = parsed
		}
	}

	rateLimit := 120
	if envRate := os.Getenv("RATE_LIMIT"); envRate != "" {
		if parsed, parseErr := fmt.Sscanf(envRate, "%d", &rateLimit); parseErr != nil || parsed != 1 || rateLimit <= 0 {
			logger.Warn("Invalid RATE_LIMIT value '%s', using default 120", envRate)
			rateLimit = 120
		}
	}

	config := ServerConfig{
		Port:               util.GetEnvWithDefault("PORT", core.DefaultPort),
		GinMode:            util.GetEnvWithDefault("GIN_MODE", core.DefaultGinMode),
		SourceURLs:         sourceURLs,
		RefreshInterval:    refreshInterval,
		RateLimit:          rateLimit,
		CORSAllowOrigin:    util.GetEnvWithDefault("CORS_ALLOW_ORIGIN", "*"),
		HTTPClientSettings: DefaultHTTPClientSettings(),
	}

	return config, nil
}
