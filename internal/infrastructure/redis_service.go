package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisOptions selects a redis server. URL wins over the individual fields.
type RedisOptions struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

func (o RedisOptions) Enabled() bool {
	return o.URL != "" || o.Host != ""
}

// RedisService stores the refresh-token blacklist in redis, one key per
// token that expires together with the token.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(ctx context.Context, opts RedisOptions) (*RedisService, error) {
	var options *redis.Options
	if opts.URL != "" {
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		options = parsed
	} else {
		port := opts.Port
		if port == "" {
			port = "6379"
		}
		options = &redis.Options{
			Addr:         fmt.Sprintf("%s:%s", opts.Host, port),
			Password:     opts.Password,
			DB:           opts.DB,
			PoolSize:     10,
			MinIdleConns: 5,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", options.Addr, err)
	}
	return NewRedisServiceWithClient(client), nil
}

func NewRedisServiceWithClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

func blacklistKey(jti string) string {
	return "blacklist:" + jti
}

func (r *RedisService) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

func (r *RedisService) Contains(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, blacklistKey(jti)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, err
	}
}

func (r *RedisService) Close() error {
	return r.client.Close()
}
