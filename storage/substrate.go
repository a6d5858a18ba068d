// Package storage persists tourweb's documents in a key-value substrate.
//
// A Substrate stores opaque byte values under string keys. The Adapter
// layered on top serializes the blog and pricing documents to JSON under
// fixed keys and never lets a persistence failure escape: reads fall back
// to empty documents and writes are logged.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Substrate.Get when the key is absent.
var ErrNotFound = errors.New("storage: key not found")

// Substrate is a durable key-value store holding whole documents.
type Substrate interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the substrate described by dsn:
//
//	memory:                 in-process map, lost on exit
//	sqlite:<path> or <path> SQLite database file
//	redis://... rediss://... Redis server, keys prefixed with redisPrefix
func Open(dsn, redisPrefix string) (Substrate, error) {
	switch {
	case dsn == "memory:":
		return NewMemory(), nil
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return NewRedis(RedisOptions{URL: dsn, Prefix: redisPrefix})
	case strings.HasPrefix(dsn, "sqlite:"):
		return NewSQLite(strings.TrimPrefix(dsn, "sqlite:"))
	case dsn == "":
		return nil, fmt.Errorf("storage: empty dsn")
	default:
		return NewSQLite(dsn)
	}
}
