package corpus

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

// CachedFile stores a record file's decoded token sequences with its
// mod time for invalidation. Only the sequences are cached; text and
// metadata are cheap to drop and expensive to keep.
type CachedFile struct {
	ModTime   int64
	Sequences [][]int32
}

// FileCache stores decoded sequences for every record file seen so far,
// skipping the decompress-and-parse pass on repeat runs.
type FileCache struct {
	Version int // cache format version for invalidation
	Files   map[string]CachedFile
}

const cacheVersion = 1

const cacheDirName = ".nearmatch"

// LoadCache reads the cache from dir, or returns an empty one when the
// file is missing, unreadable, or from another format version.
func LoadCache(dir string) *FileCache {
	empty := &FileCache{Version: cacheVersion, Files: make(map[string]CachedFile)}

	cachePath := filepath.Join(dir, cacheDirName, "cache.gob")
	file, err := os.Open(cachePath)
	if err != nil {
		return empty
	}
	defer file.Close()

	var cache FileCache
	if err := gob.NewDecoder(file).Decode(&cache); err != nil {
		return empty
	}
	if cache.Version != cacheVersion || cache.Files == nil {
		return empty
	}
	return &cache
}

// SaveCache writes the cache under dir. Failures are silent; the cache
// is an optimization, not state.
func SaveCache(dir string, cache *FileCache) {
	cacheDir := filepath.Join(dir, cacheDirName)
	os.MkdirAll(cacheDir, 0755)

	file, err := os.Create(filepath.Join(cacheDir, "cache.gob"))
	if err != nil {
		return
	}
	defer file.Close()

	gob.NewEncoder(file).Encode(cache)
}

// Lookup returns the cached sequences for path if the file's mod time
// still matches.
func (c *FileCache) Lookup(path string) ([][]int32, bool) {
	cached, ok := c.Files[path]
	if !ok {
		return nil, false
	}
	info, err := os.Stat(path)
	if err != nil || info.ModTime().UnixNano() != cached.ModTime {
		return nil, false
	}
	return cached.Sequences, true
}

// Store records the sequences decoded from path.
func (c *FileCache) Store(path string, sequences [][]int32) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	c.Files[path] = CachedFile{
		ModTime:   info.ModTime().UnixNano(),
		Sequences: sequences,
	}
}
