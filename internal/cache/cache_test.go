package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	a := CacheKey("icons/Units/38.png")
	b := CacheKey("icons/Units/38.png")
	c := CacheKey("icons/Units/39.png")

	if a != b {
		t.Errorf("expected stable key, got %s and %s", a, b)
	}
	if a == c {
		t.Error("expected different keys for different paths")
	}
	if !strings.HasPrefix(a, "civcards:v1:") {
		t.Errorf("unexpected key prefix: %s", a)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	val, ok := c.Get("k")
	if !ok || string(val) != "v" {
		t.Errorf("expected hit with v, got %q %v", val, ok)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after delete")
	}

	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache after clear, got %d", c.Len())
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("short", []byte("x"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.bin")
	if err := os.WriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewMemoryCache(0, time.Minute)

	data, err := ReadFile(c, path, 0)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("expected first, got %q", data)
	}

	// Later reads are served from the cache
	if err := os.WriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	data, _ = ReadFile(c, path, 0)
	if string(data) != "first" {
		t.Errorf("expected cached first, got %q", data)
	}

	data, _ = ReadFile(nil, path, 0)
	if string(data) != "second" {
		t.Errorf("expected uncached second, got %q", data)
	}
}

func TestReadFile_Missing(t *testing.T) {
	c := NewMemoryCache(0, time.Minute)
	if _, err := ReadFile(c, filepath.Join(t.TempDir(), "nope.png"), 0); err == nil {
		t.Error("expected error for missing file")
	}
	if c.Len() != 0 {
		t.Error("failed reads must not be cached")
	}
}
