package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ LinkCache = (*RedisClient)(nil)

// RedisClient implements LinkCache on top of Redis.
type RedisClient struct {
	client     *redis.Client
	ttl        time.Duration
	keyBuilder *KeyBuilder
}

type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	CacheTTL     int    // seconds; 0 means no expiration
	Namespace    string // optional key namespace
}

func NewRedisClient(cfg RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, NewCacheError("connect", "", fmt.Errorf("failed to connect to Redis: %w", err))
	}

	return &RedisClient{
		client:     client,
		ttl:        time.Duration(cfg.CacheTTL) * time.Second,
		keyBuilder: NewKeyBuilder(cfg.Namespace),
	}, nil
}

func (r *RedisClient) GetURL(ctx context.Context, shortCode string) (string, error) {
	if shortCode == "" {
		return "", NewCacheError("get", shortCode, ErrInvalidCacheKey)
	}

	key := r.keyBuilder.Link(shortCode)
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCacheMiss
		}
		return "", NewCacheError("get", key, err)
	}

	return value, nil
}

func (r *RedisClient) SetURL(ctx context.Context, shortCode, longURL string) error {
	if shortCode == "" {
		return NewCacheError("set", shortCode, ErrInvalidCacheKey)
	}

	key := r.keyBuilder.Link(shortCode)
	if err := r.client.Set(ctx, key, longURL, r.ttl).Err(); err != nil {
		return NewCacheError("set", key, err)
	}

	return nil
}

func (r *RedisClient) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return NewCacheError("ping", "", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	if err := r.client.Close(); err != nil {
		return NewCacheError("close", "", err)
	}
	return nil
}
