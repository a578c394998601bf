// Package feedio moves feed data across process boundaries: raw rows in,
// resolved records out, both as JSONL.
package feedio

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/safefeed/refmatch/pkg/refmatch/record"
)

// LoadRows loads raw feed rows from a JSONL file with proper error handling
func LoadRows(path string) ([]record.RawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var rows []record.RawRow
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var row record.RawRow
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid rows found in %s", path)
	}

	return rows, nil
}

// WriteRecords writes records to w, one JSON object per line.
func WriteRecords(w io.Writer, records []record.Record) error {
	enc := json.NewEncoder(w)
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("encode record %s: %w", records[i].ID, err)
		}
	}
	return nil
}

// WriteRecordsFile writes records as JSONL to path, replacing any
// existing file.
func WriteRecordsFile(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteRecords(f, records)
}
