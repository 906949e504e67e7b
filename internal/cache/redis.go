package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
)

const versionSuffix = ":version"

var errStaleEntry = errors.New("cache entry invalidated during populate")

type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// Remember reads key, or populates it from producer. The populated value is
// stored only if no Forget bumped the key's version while producer ran.
func (c *RedisCache) Remember(ctx context.Context, key string, ttl time.Duration, dest interface{}, producer func() (interface{}, error)) error {
	log := config.WithContext(ctx).WithField("cache_key", key)
	k := c.prefix + key
	vk := k + versionSuffix

	startVersion, versionErr := readVersion(ctx, c.client, vk)
	if versionErr != nil {
		log.WithError(versionErr).Warn("Redis error reading cache version, result will not be stored")
	}

	val, err := c.client.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(val, dest); jsonErr == nil {
			return nil
		}
		log.Warn("Discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		log.WithError(err).Warn("Redis error on GET, falling back to producer")
	}

	raw, err := populate(dest, producer)
	if err != nil {
		return err
	}
	if versionErr != nil {
		return nil
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx, vk)
		if err != nil {
			return err
		}
		if current != startVersion {
			return errStaleEntry
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, raw, ttl)
			return nil
		})
		return err
	}, vk)
	switch {
	case err == nil:
	case errors.Is(err, errStaleEntry), errors.Is(err, redis.TxFailedErr):
		log.Debug("Cache invalidated during populate, entry not stored")
	default:
		log.WithError(err).Warn("Failed to store cache entry")
	}
	return nil
}

// Forget deletes key and bumps its version in one transaction.
func (c *RedisCache) Forget(ctx context.Context, key string) error {
	k := c.prefix + key
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.Incr(ctx, k+versionSuffix)
		return nil
	})
	return err
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readVersion(ctx context.Context, r stringGetter, key string) (int64, error) {
	v, err := r.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}
