// Package cache persists per-file scan results between runs, keyed by
// content hash.
package cache

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"routelint/internal/analysis"
)

// schemaVersion invalidates every entry when the payload format changes.
const schemaVersion uint16 = 1

// payload is the on-disk envelope around one cached file result.
type payload struct {
	Schema uint16
	Entry  analysis.CachedFile
}

// Cache is a msgpack disk cache under the XDG cache directory.
// Writes are atomic (temp file + rename); schema mismatches and corrupt
// entries read as misses.
type Cache struct {
	dir   string
	warnf func(format string, args ...any)
}

// Open initializes the cache at ${XDG_CACHE_HOME:-~/.cache}/<app>/scan.
func Open(app string, warnf func(format string, args ...any)) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "scan")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, warnf: warnf}, nil
}

// OpenAt initializes the cache at an explicit directory (tests).
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".mp")
}

// Get reads one entry. Any read or decode problem is a miss.
func (c *Cache) Get(hash [32]byte) (*analysis.CachedFile, bool) {
	if c == nil {
		return nil, false
	}
	// #nosec G304 -- path is derived from the content hash
	f, err := os.Open(c.pathFor(hash))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && c.warnf != nil {
			c.warnf("cache read failed: %v", err)
		}
		return nil, false
	}
	defer f.Close() //nolint:errcheck

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false
	}
	if p.Schema != schemaVersion {
		return nil, false
	}
	return &p.Entry, true
}

// Put writes one entry atomically.
func (c *Cache) Put(hash [32]byte, entry *analysis.CachedFile) error {
	if c == nil || entry == nil {
		return nil
	}
	target := c.pathFor(hash)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck

	if err := msgpack.NewEncoder(f).Encode(payload{Schema: schemaVersion, Entry: *entry}); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
