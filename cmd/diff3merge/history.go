package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/odvcencio/diff3merge/pkg/linediff"
)

// historyRecord is the persisted shape of one past merge result. It is
// marshaled to JSON and zstd-compressed before being written to disk,
// mirroring the teacher's compressZstd/decompressZstd pair
// (pkg/remote/compress.go) applied to a local cache instead of a wire
// payload.
type historyRecord struct {
	Base, Ours, Theirs string
	Merged             string
	Conflicted         bool
	ConflictCount      int
	TakenAt            string
}

// saveHistory compresses record as JSON+zstd and writes it to
// dir/<TakenAt-as-filename>.json.zst.
func saveHistory(dir string, record historyRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create history dir %q: %w", dir, err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal history record: %w", err)
	}

	compressed, err := compressZstd(data)
	if err != nil {
		return "", fmt.Errorf("compress history record: %w", err)
	}

	name := record.TakenAt + ".json.zst"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return "", fmt.Errorf("write history record %q: %w", path, err)
	}
	return path, nil
}

// loadHistory reads and decompresses a history record previously
// written by saveHistory.
func loadHistory(path string) (historyRecord, error) {
	var record historyRecord

	compressed, err := os.ReadFile(path)
	if err != nil {
		return record, fmt.Errorf("read history record %q: %w", path, err)
	}
	data, err := decompressZstd(compressed)
	if err != nil {
		return record, fmt.Errorf("decompress history record %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("unmarshal history record %q: %w", path, err)
	}
	return record, nil
}

// listHistory returns the paths of all saved history records in dir,
// oldest first (lexical order on the timestamp-named files).
func listHistory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir %q: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

func compressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// recordFromMerge builds a historyRecord from a merge invocation's
// inputs and linediff.MergeResult, stamped with takenAt (injected by
// the caller so history stays deterministic and testable).
func recordFromMerge(base, ours, theirs string, result linediff.MergeResult, takenAt time.Time) historyRecord {
	r := historyRecord{
		Base:          base,
		Ours:          ours,
		Theirs:        theirs,
		Conflicted:    result.Conflicted,
		ConflictCount: len(result.Conflicts),
		TakenAt:       takenAt.UTC().Format("2006-01-02T15:04:05.000000000Z07:00"),
	}
	if result.Success() {
		r.Merged = result.Merged
	} else {
		r.Merged = result.Partial
	}
	return r
}
