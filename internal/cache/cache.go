// Package cache persists build digests between runs so unchanged
// theme files are not rewritten.
package cache

import (
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"hadalized/pkg/errors"
)

// dbFile is the single store file kept inside the cache directory.
const dbFile = "builds.db"

// digestBucket maps output path to content digest, one entry per
// previously written file.
var digestBucket = []byte("digests")

// Cache is a path -> digest store backed by a bbolt file, or by a
// plain map when running in memory. Every mutation runs in its own
// transaction; there are no cross-call transactions to manage. Use
// Connect before any operation and Close when the write session ends.
type Cache struct {
	dir      string
	inMemory bool

	db  *bolt.DB
	mem map[string]string
}

// New prepares a cache rooted at dir. The in-memory mode never touches
// the filesystem and is used for ephemeral and dry runs.
func New(dir string, inMemory bool) *Cache {
	return &Cache{dir: dir, inMemory: inMemory}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Connected reports whether the store is open.
func (c *Cache) Connected() bool {
	if c.inMemory {
		return c.mem != nil
	}
	return c.db != nil
}

// Connect opens the underlying store, creating the cache directory and
// digest bucket on first use.
func (c *Cache) Connect() error {
	if c.Connected() {
		return nil
	}
	if c.inMemory {
		c.mem = make(map[string]string)
		return nil
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return errors.NewIOError("create cache dir", c.dir, err)
	}
	path := filepath.Join(c.dir, dbFile)
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return errors.NewIOError("open cache", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(digestBucket)
		return err
	})
	if err != nil {
		db.Close()
		return errors.NewIOError("init cache", path, err)
	}
	c.db = db
	return nil
}

// Close releases the store. Closing a disconnected cache is a no-op so
// callers can defer it unconditionally.
func (c *Cache) Close() error {
	if c.inMemory {
		c.mem = nil
		return nil
	}
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return errors.NewIOError("close cache", c.dir, err)
	}
	return nil
}

func (c *Cache) guard(op string) error {
	if !c.Connected() {
		return errors.NewStateError(op, "cache is not connected")
	}
	return nil
}

// Add upserts the digest recorded for a path.
func (c *Cache) Add(path, digest string) error {
	if err := c.guard("cache add"); err != nil {
		return err
	}
	if c.inMemory {
		c.mem[path] = digest
		return nil
	}
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(digestBucket).Put([]byte(path), []byte(digest))
	})
	if err != nil {
		return errors.NewIOError("cache add", path, err)
	}
	return nil
}

// Delete removes the entry for a path. Deleting an absent path is not
// an error.
func (c *Cache) Delete(path string) error {
	if err := c.guard("cache delete"); err != nil {
		return err
	}
	if c.inMemory {
		delete(c.mem, path)
		return nil
	}
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(digestBucket).Delete([]byte(path))
	})
	if err != nil {
		return errors.NewIOError("cache delete", path, err)
	}
	return nil
}

// Get returns the digest recorded for a path, with ok reporting
// whether an entry existed.
func (c *Cache) Get(path string) (digest string, ok bool, err error) {
	if err := c.guard("cache get"); err != nil {
		return "", false, err
	}
	if c.inMemory {
		digest, ok = c.mem[path]
		return digest, ok, nil
	}
	err = c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(digestBucket).Get([]byte(path)); v != nil {
			digest = string(v)
			ok = true
		}
		return nil
	})
	if err != nil {
		return "", false, errors.NewIOError("cache get", path, err)
	}
	return digest, ok, nil
}

// Entries returns every path -> digest pair in the store.
func (c *Cache) Entries() (map[string]string, error) {
	if err := c.guard("cache entries"); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if c.inMemory {
		for k, v := range c.mem {
			out[k] = v
		}
		return out, nil
	}
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(digestBucket).ForEach(func(k, v []byte) error {
			out[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, errors.NewIOError("cache entries", c.dir, err)
	}
	return out, nil
}

// Clear removes the cache directory and everything in it, closing the
// store first if needed. The in-memory mode just resets.
func (c *Cache) Clear() error {
	if c.inMemory {
		if c.mem != nil {
			c.mem = make(map[string]string)
		}
		return nil
	}
	if err := c.Close(); err != nil {
		return err
	}
	if err := os.RemoveAll(c.dir); err != nil {
		return errors.NewIOError("clear cache", c.dir, err)
	}
	return nil
}
