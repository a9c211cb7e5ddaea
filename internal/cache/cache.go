package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache defines the interface for caching asset bytes
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from an asset path
func CacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	hash := sha256.Sum256([]byte(path))
	return "civcards:v1:" + hex.EncodeToString(hash[:])
}

// ReadFile reads path through c. A nil cache reads straight from disk.
func ReadFile(c Cache, path string, ttl time.Duration) ([]byte, error) {
	if c == nil {
		return readFile(path)
	}

	key := CacheKey(path)
	if data, ok := c.Get(key); ok {
		return data, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := c.Set(key, data, ttl); err != nil {
		return nil, fmt.Errorf("cache %s: %w", path, err)
	}
	return data, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	return data, nil
}
