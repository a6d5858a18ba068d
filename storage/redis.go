package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Substrate backed by a Redis server. Documents never expire.
type Redis struct {
	client *redis.Client
	prefix string
}

// RedisOptions configures the Redis substrate.
type RedisOptions struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Prefix is prepended to every key (default "tourweb:")
	Prefix string

	// ConnectTimeout bounds the initial ping (default 5s)
	ConnectTimeout time.Duration
}

// NewRedis connects to the server at opts.URL and verifies it answers.
func NewRedis(opts RedisOptions) (*Redis, error) {
	if opts.URL == "" {
		return nil, errors.New("storage: redis URL is required")
	}
	if opts.Prefix == "" {
		opts.Prefix = "tourweb:"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}
	redisOpts.DialTimeout = opts.ConnectTimeout
	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Redis{client: client, prefix: opts.Prefix}, nil
}

func (r *Redis) prefixKey(key string) string {
	return r.prefix + key
}

// Get returns the document stored under key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefixKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set overwrites the document stored under key, without expiry.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.prefixKey(key), value, 0).Err()
}

// Delete removes the document stored under key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefixKey(key)).Err()
}

// Close closes the client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
