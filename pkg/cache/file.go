package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache persists rendered artifacts on disk so repeated renders of the
// same definition are served without re-measuring. Entries are grouped by
// key space ("layout", "artifact") and fanned out over hashed
// subdirectories, so `cache clear` can report and remove per-space counts.
type FileCache struct {
	dir string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk envelope around one cached artifact. The key is
// stored alongside the payload so an entry file is self-describing.
type fileEntry struct {
	Key       string    `json:"key"`
	Artifact  []byte    `json:"artifact"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (e *fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get returns the artifact stored under key. Corrupt and expired entries
// are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Artifact, true, nil
}

// Set stores an artifact under key. A ttl of zero means the entry never
// expires. The entry lands via a temporary file and rename, so a
// concurrent Get never observes a partial write.
func (c *FileCache) Set(ctx context.Context, key string, artifact []byte, ttl time.Duration) error {
	entry := fileEntry{
		Key:      key,
		Artifact: artifact,
		StoredAt: time.Now(),
	}
	if ttl > 0 {
		entry.ExpiresAt = entry.StoredAt.Add(ttl)
	}

	data, err := json.Marshal(&entry)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the entry under key, if present.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; the file cache holds no handles between calls.
func (c *FileCache) Close() error { return nil }

// entryPath maps a key to its file. The key-space prefix (up to the first
// colon) becomes a directory and the key hash fans entries out over 256
// subdirectories. Keys without a space prefix land under "misc".
func (c *FileCache) entryPath(key string) string {
	space := "misc"
	if i := strings.IndexByte(key, ':'); i > 0 {
		space = key[:i]
	}
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, space, sum[:2], sum[2:]+".entry")
}

var _ Cache = (*FileCache)(nil)
