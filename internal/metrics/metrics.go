package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

// AtomicRequestStats thread-safe request statistics
type AtomicRequestStats struct {
	TotalRequests      atomic.Int64
	SuccessfulRequests atomic.Int64
	FailedRequests     atomic.Int64
}

// MetricsConfig configuration for MetricsService
type MetricsConfig struct {
	SaveInterval time.Duration
	HistorySize  int
	Storage      core.StorageInterface
	Logger       core.Logger
}

// MetricsService collects request statistics and persists them through the
// configured storage with a debounce.
type MetricsService struct {
	atomicStats     AtomicRequestStats
	requestHistory  []core.RequestRecord
	historyMu       sync.RWMutex
	maxHistorySize  int
	storage         core.StorageInterface
	logger          core.Logger
	lastSaveTime    time.Time
	minSaveInterval time.Duration
	recentRequests  []time.Time
	recentMu        sync.Mutex
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(config MetricsConfig) *MetricsService {
	historySize := config.HistorySize
	if historySize <= 0 {
		historySize = core.HistoryBufferSize
	}
	logger := config.Logger
	if logger == nil {
		logger = &core.NopLogger{}
	}

	return &MetricsService{
		maxHistorySize:  historySize,
		storage:         config.Storage,
		logger:          logger,
		minSaveInterval: config.SaveInterval,
	}
}

// RecordRequest records one served request.
func (ms *MetricsService) RecordRequest(success bool, duration time.Duration) {
	now := time.Now()

	ms.atomicStats.TotalRequests.Add(1)
	if success {
		ms.atomicStats.SuccessfulRequests.Add(1)
	} else {
		ms.atomicStats.FailedRequests.Add(1)
	}

	ms.recentMu.Lock()
	ms.recentRequests = append(ms.recentRequests, now)
	ms.trimRecentLocked(now)
	ms.recentMu.Unlock()

	record := core.RequestRecord{
		Timestamp: now,
		Duration:  duration.Milliseconds(),
		Success:   success,
	}

	ms.historyMu.Lock()
	ms.requestHistory = append(ms.requestHistory, record)
	if len(ms.requestHistory) > ms.maxHistorySize {
		ms.requestHistory = ms.requestHistory[len(ms.requestHistory)-ms.maxHistorySize:]
	}
	ms.historyMu.Unlock()

	ms.SaveStatsDebounced()
}

func (ms *MetricsService) trimRecentLocked(now time.Time) {
	cutoff := now.Add(-1 * time.Minute)
	startIdx := 0
	for startIdx < len(ms.recentRequests) && ms.recentRequests[startIdx].Before(cutoff) {
		startIdx++
	}
	if startIdx > 0 {
		newRecent := make([]time.Time, len(ms.recentRequests)-startIdx)
		copy(newRecent, ms.recentRequests[startIdx:])
		ms.recentRequests = newRecent
	}
}

// GetQPS returns requests per second over the last minute.
func (ms *MetricsService) GetQPS() float64 {
	ms.recentMu.Lock()
	defer ms.recentMu.Unlock()

	ms.trimRecentLocked(time.Now())
	if len(ms.recentRequests) == 0 {
		return 0
	}
	return math.Round(float64(len(ms.recentRequests))/60.0*1000) / 1000
}

// GetRequestStats returns current stats snapshot
func (ms *MetricsService) GetRequestStats() core.RequestStats {
	ms.historyMu.RLock()
	defer ms.historyMu.RUnlock()

	historyCopy := make([]core.RequestRecord, len(ms.requestHistory))
	copy(historyCopy, ms.requestHistory)

	return core.RequestStats{
		TotalRequests:      ms.atomicStats.TotalRequests.Load(),
		SuccessfulRequests: ms.atomicStats.SuccessfulRequests.Load(),
		FailedRequests:     ms.atomicStats.FailedRequests.Load(),
		RequestHistory:     historyCopy,
	}
}

// LoadStats loads stats from storage
func (ms *MetricsService) LoadStats() error {
	if ms.storage == nil {
		return nil
	}
	stats, err := ms.storage.LoadStats()
	if err != nil {
		return err
	}

	ms.atomicStats.TotalRequests.Store(stats.TotalRequests)
	ms.atomicStats.SuccessfulRequests.Store(stats.SuccessfulRequests)
	ms.atomicStats.FailedRequests.Store(stats.FailedRequests)

	ms.historyMu.Lock()
	ms.requestHistory = stats.RequestHistory
	ms.historyMu.Unlock()

	return nil
}

// SaveStatsDebounced saves stats with debounce
func (ms *MetricsService) SaveStatsDebounced() {
	now := time.Now()
	ms.historyMu.Lock()
	if now.Sub(ms.lastSaveTime) < ms.minSaveInterval {
		ms.historyMu.Unlock()
		return
	}
	ms.lastSaveTime = now
	ms.historyMu.Unlock()

	if ms.storage == nil {
		return
	}

	stats := ms.GetRequestStats()
	if err := ms.storage.SaveStats(&stats); err != nil {
		ms.logger.Warn("Failed to save stats: %v", err)
	}
}

// Close saves final stats.
func (ms *MetricsService) Close() error {
	if ms.storage != nil {
		stats := ms.GetRequestStats()
		return ms.storage.SaveStats(&stats)
	}
	return nil
}
