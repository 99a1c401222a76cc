package corpus

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLines(t *testing.T, path string, lines []string) {
	t.Helper()
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if strings.HasSuffix(path, ".gz") {
		file, err := os.Create(path)
		if err != nil {
			t.Fatalf("creating %s: %v", path, err)
		}
		defer file.Close()
		gz := gzip.NewWriter(file)
		if _, err := gz.Write([]byte(sb.String())); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
		if err := gz.Close(); err != nil {
			t.Fatalf("closing %s: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

var sampleLines = []string{
	`{"iteration":1,"dataset_idx":0,"dataset_name":"pile","doc_ids":[0],"text":"a","token_ids":[1,2,3,4,5]}`,
	`{"iteration":2,"dataset_idx":0,"dataset_name":"pile","doc_ids":[1],"text":"b","token_ids":[6,7,8]}`,
	`{"iteration":3,"dataset_idx":1,"dataset_name":"pile","doc_ids":[2],"text":"c","token_ids":[],"completion_stats":{"count":2,"last_iteration":9}}`,
}

func TestReadRecordsPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shard-00000-00999.jsonl")
	writeLines(t, path, sampleLines)

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Line order must be preserved.
	for i, wantIter := range []uint32{1, 2, 3} {
		if records[i].Iteration != wantIter {
			t.Errorf("record %d: iteration %d, want %d", i, records[i].Iteration, wantIter)
		}
	}
	if got := records[0].TokenIDs; len(got) != 5 || got[0] != 1 || got[4] != 5 {
		t.Errorf("record 0 token_ids = %v", got)
	}
	if records[2].CompletionStats == nil || records[2].CompletionStats.Count != 2 {
		t.Errorf("record 2 completion_stats = %+v", records[2].CompletionStats)
	}
}

func TestReadRecordsGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shard-00000-00999.jsonl.gz")
	writeLines(t, path, sampleLines)

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if got := records[1].TokenIDs; len(got) != 3 || got[0] != 6 {
		t.Errorf("record 1 token_ids = %v", got)
	}
}

func TestReadRecordsSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	writeLines(t, path, []string{sampleLines[0], "", sampleLines[1]})

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestReadRecordsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	writeLines(t, path, []string{sampleLines[0], "{not json"})

	_, err := ReadRecords(path)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line: %v", err)
	}
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadQueries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.jsonl")
	writeLines(t, path, sampleLines)

	queries, err := LoadQueries(path)
	if err != nil {
		t.Fatalf("LoadQueries: %v", err)
	}
	if len(queries) != 3 {
		t.Fatalf("got %d queries, want 3", len(queries))
	}
	if len(queries[0]) != 5 || len(queries[1]) != 3 || len(queries[2]) != 0 {
		t.Errorf("query lengths = %d, %d, %d", len(queries[0]), len(queries[1]), len(queries[2]))
	}
}
