package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cfugett/ai-model-info-viewer/internal/cache"
	"github.com/cfugett/ai-model-info-viewer/internal/core"
	"github.com/cfugett/ai-model-info-viewer/internal/extract"
	"github.com/cfugett/ai-model-info-viewer/internal/fetch"
)

// CatalogService ties fetch → extract → cache → storage together. Reads are
// served from the LRU cache; a miss triggers a refresh, and a failed fetch
// falls back to the last-good persisted snapshot.
type CatalogService struct {
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	cache     *cache.CacheService
	storage   core.StorageInterface
	logger    core.Logger
	ttl       time.Duration

	// refreshMu single-flights concurrent refreshes.
	refreshMu sync.Mutex
}

// NewCatalogService creates the catalog service.
func NewCatalogService(fetcher *fetch.Fetcher, extractor *extract.Extractor, cacheService *cache.CacheService, storage core.StorageInterface, ttl time.Duration, logger core.Logger) *CatalogService {
	if logger == nil {
		logger = &core.NopLogger{}
	}
	return &CatalogService{
		fetcher:   fetcher,
		extractor: extractor,
		cache:     cacheService,
		storage:   storage,
		logger:    logger,
		ttl:       ttl,
	}
}

// Get returns the current catalog snapshot, refreshing when the cached one
// has expired.
func (cs *CatalogService) Get(ctx context.Context) (*core.CatalogSnapshot, error) {
	if snapshot, found := cs.cache.GetCatalog(core.CatalogCacheKey); found {
		return snapshot, nil
	}
	return cs.Refresh(ctx)
}

// Refresh fetches and extracts the upstream document, bypassing the cache.
// On fetch failure the last persisted snapshot is served instead; the error
// is returned only when no fallback exists.
func (cs *CatalogService) Refresh(ctx context.Context) (*core.CatalogSnapshot, error) {
	cs.refreshMu.Lock()
	defer cs.refreshMu.Unlock()

	// Another caller may have refreshed while this one waited on the lock.
	if snapshot, found := cs.cache.GetCatalog(core.CatalogCacheKey); found {
		return snapshot, nil
	}

	doc, sourceURL, err := cs.fetcher.Fetch(ctx)
	if err != nil {
		cs.logger.Error("all source URLs failed: %v", err)
		return cs.fallbackSnapshot(err)
	}

	catalog := cs.extractor.Extract(doc)
	snapshot := &core.CatalogSnapshot{
		SourceURL:  sourceURL,
		FetchedAt:  time.Now(),
		Providers:  catalog,
		ModelCount: countModels(catalog),
	}

	cs.cache.SetCatalog(core.CatalogCacheKey, snapshot, cs.ttl)

	if cs.storage != nil {
		if err := cs.storage.SaveSnapshot(snapshot); err != nil {
			cs.logger.Warn("failed to persist catalog snapshot: %v", err)
		}
	}

	return snapshot, nil
}

// ForceRefresh invalidates the cache before refreshing.
func (cs *CatalogService) ForceRefresh(ctx context.Context) (*core.CatalogSnapshot, error) {
	cs.cache.InvalidateCatalog(core.CatalogCacheKey)
	return cs.Refresh(ctx)
}

func (cs *CatalogService) fallbackSnapshot(fetchErr error) (*core.CatalogSnapshot, error) {
	if cs.storage == nil {
		return nil, fetchErr
	}

	snapshot, err := cs.storage.LoadSnapshot()
	if err != nil {
		cs.logger.Error("failed to load fallback snapshot: %v", err)
		return nil, fetchErr
	}
	if snapshot == nil {
		return nil, fmt.Errorf("no cached snapshot available: %w", fetchErr)
	}

	cs.logger.Warn("serving stale snapshot from %s (fetched %s)",
		snapshot.SourceURL, snapshot.FetchedAt.Format(core.TimeFormatDateTime))
	return snapshot, nil
}

func countModels(catalog core.Catalog) int {
	count := 0
	for _, provider := range catalog {
		count += len(provider.Models)
	}
	return count
}
