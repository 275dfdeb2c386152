package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists generated sequences on disk, one file per parameter
// hash. It is the backend behind the CLI and the HTTP server, so a scan
// regenerated with the same parameters is served from the previous run.
type FileCache struct {
	dir string
}

// NewFileCache opens the cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// entry is the on-disk shape: the serialized sequence plus expiry
// metadata. Scan entries normally carry a zero Expires, since a
// deterministic result never goes stale.
type entry struct {
	Payload []byte    `json:"payload"`
	Expires time.Time `json:"expires,omitempty"`
}

// Get retrieves a stored sequence. A corrupt or expired entry is removed
// and reported as a miss, so the caller regenerates instead of failing.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.Expires.IsZero() && time.Now().After(e.Expires) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return e.Payload, true, nil
}

// Set stores a sequence under key. The entry is written to a temp file
// and renamed in, so a reader never sees a half-written result.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{Payload: data}
	if ttl > 0 {
		e.Expires = time.Now().Add(ttl)
	}

	out, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes a stored sequence. Missing keys are not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; files need no teardown.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to its file, sharded by the first hash byte so a long
// session of parameter sweeps does not pile thousands of entries into
// one directory.
func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".entry")
}

var _ Cache = (*FileCache)(nil)
