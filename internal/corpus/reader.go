package corpus

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record lines carry full token sequences and the decoded text, so they
// run far past bufio's default limit.
const maxLineBytes = 64 * 1024 * 1024

// ReadRecords decodes every line of a record file, in file order.
// Files ending in .gz are decompressed on the fly. A malformed line
// aborts the read with its line number.
func ReadRecords(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}

	var records []Record
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 1024*1024), maxLineBytes)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s line %d: %w", path, lineNumber, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// LoadQueries reads a record file and keeps only the token sequences.
func LoadQueries(path string) ([][]int32, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	queries := make([][]int32, len(records))
	for i, rec := range records {
		queries[i] = rec.TokenIDs
	}
	return queries, nil
}
