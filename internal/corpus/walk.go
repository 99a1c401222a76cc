package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ListFiles enumerates record files under dir recursively. The result
// is sorted so runs are deterministic regardless of directory order.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".jsonl") || strings.HasSuffix(path, ".jsonl.gz") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// FilterShardRange keeps files whose shard index falls in
// [start*1000, end*1000]. Shard files are named like
// pythia-00000-00999.jsonl.gz; the index is the first number after the
// basename's leading dash. Files without a parsable index are dropped.
func FilterShardRange(paths []string, start, end int) []string {
	var kept []string
	for _, path := range paths {
		idx, ok := shardIndex(path)
		if !ok {
			continue
		}
		if start*1000 <= idx && idx <= end*1000 {
			kept = append(kept, path)
		}
	}
	return kept
}

func shardIndex(path string) (int, bool) {
	base := filepath.Base(path)
	parts := strings.Split(base, "-")
	if len(parts) < 2 {
		return 0, false
	}
	numeric, _, _ := strings.Cut(parts[1], ".")
	idx, err := strconv.Atoi(numeric)
	if err != nil {
		return 0, false
	}
	return idx, true
}
