package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
	"github.com/cfugett/ai-model-info-viewer/internal/util"

	"github.com/redis/go-redis/v9"
)

const (
	snapshotRedisKey = "ai-model-info-viewer:snapshot"
	statsRedisKey    = "ai-model-info-viewer:stats"
)

// FileStorage implements persistence using JSON files
type FileStorage struct {
	snapshotPath string
	statsPath    string
}

// NewFileStorage creates file-backed storage under the given paths, falling
// back to the defaults when empty.
func NewFileStorage(snapshotPath, statsPath string) *FileStorage {
	if snapshotPath == "" {
		snapshotPath = core.SnapshotFilePath
	}
	if statsPath == "" {
		statsPath = core.StatsFilePath
	}
	return &FileStorage{snapshotPath: snapshotPath, statsPath: statsPath}
}

// SaveSnapshot persists the last-good catalog snapshot.
func (fs *FileStorage) SaveSnapshot(snapshot *core.CatalogSnapshot) error {
	return fs.writeJSON(fs.snapshotPath, snapshot)
}

// LoadSnapshot loads the last-good catalog snapshot. A missing file returns
// nil without error.
func (fs *FileStorage) LoadSnapshot() (*core.CatalogSnapshot, error) {
	data, err := os.ReadFile(fs.snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot core.CatalogSnapshot
	if err := util.UnmarshalJSON(data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// SaveStats persists request statistics.
func (fs *FileStorage) SaveStats(stats *core.RequestStats) error {
	return fs.writeJSON(fs.statsPath, stats)
}

// LoadStats loads request statistics, returning a fresh value when the file
// does not exist yet.
func (fs *FileStorage) LoadStats() (*core.RequestStats, error) {
	data, err := os.ReadFile(fs.statsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &core.RequestStats{RequestHistory: []core.RequestRecord{}}, nil
		}
		return nil, err
	}

	var stats core.RequestStats
	if err := util.UnmarshalJSON(data, &stats); err != nil {
		return nil, err
	}

	if stats.RequestHistory == nil {
		stats.RequestHistory = []core.RequestRecord{}
	}
	return &stats, nil
}

func (fs *FileStorage) writeJSON(path string, v any) error {
	data, err := util.MarshalJSONIndent(v)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, core.DirPermission); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, core.FilePermissionReadWrite)
}

// Close is a no-op for file storage.
func (fs *FileStorage) Close() error {
	return nil
}

// RedisStorage implements persistence using Redis
type RedisStorage struct {
	client      *redis.Client
	ctx         context.Context
	snapshotKey string
	statsKey    string
}

// RedisStorageConfig Redis storage config
type RedisStorageConfig struct {
	URL string
}

// NewRedisStorage connects to Redis and verifies the connection.
func NewRedisStorage(config RedisStorageConfig) (*RedisStorage, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &RedisStorage{
		client:      client,
		ctx:         ctx,
		snapshotKey: snapshotRedisKey,
		statsKey:    statsRedisKey,
	}, nil
}

// SaveSnapshot persists the last-good catalog snapshot.
func (rs *RedisStorage) SaveSnapshot(snapshot *core.CatalogSnapshot) error {
	return rs.setJSON(rs.snapshotKey, snapshot)
}

// LoadSnapshot loads the last-good catalog snapshot. A missing key returns
// nil without error.
func (rs *RedisStorage) LoadSnapshot() (*core.CatalogSnapshot, error) {
	val, err := rs.client.Get(rs.ctx, rs.snapshotKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot core.CatalogSnapshot
	if err := util.UnmarshalJSON([]byte(val), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// SaveStats persists request statistics.
func (rs *RedisStorage) SaveStats(stats *core.RequestStats) error {
	return rs.setJSON(rs.statsKey, stats)
}

// LoadStats loads request statistics, returning a fresh value when the key
// does not exist yet.
func (rs *RedisStorage) LoadStats() (*core.RequestStats, error) {
	val, err := rs.client.Get(rs.ctx, rs.statsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &core.RequestStats{RequestHistory: []core.RequestRecord{}}, nil
		}
		return nil, err
	}

	var stats core.RequestStats
	if err := util.UnmarshalJSON([]byte(val), &stats); err != nil {
		return nil, err
	}

	if stats.RequestHistory == nil {
		stats.RequestHistory = []core.RequestRecord{}
	}
	return &stats, nil
}

func (rs *RedisStorage) setJSON(key string, v any) error {
	data, err := util.MarshalJSON(v)
	if err != nil {
		return err
	}
	return rs.client.Set(rs.ctx, key, data, 0).Err()
}

// Close closes the Redis connection.
func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}

// InitStorage selects Redis when REDIS_URL is set (falling back to file
// storage when the connection fails) and file storage otherwise.
func InitStorage(logger core.Logger) (core.StorageInterface, error) {
	snapshotPath := os.Getenv("SNAPSHOT_FILE")
	statsPath := os.Getenv("STATS_FILE")

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStorage, err := NewRedisStorage(RedisStorageConfig{URL: redisURL})
		if err != nil {
			logger.Warn("Failed to initialize Redis storage: %v, falling back to file storage", err)
			return NewFileStorage(snapshotPath, statsPath), nil
		}
		logger.Info("Using Redis storage")
		return redisStorage, nil
	}

	logger.Info("Using file storage")
	return NewFileStorage(snapshotPath, statsPath), nil
}
