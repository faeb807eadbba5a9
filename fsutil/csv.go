package fsutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

// SaveCSV writes rows to path as comma-delimited CSV. When headers is
// non-empty it becomes the first record. The whole file is encoded in memory
// and written atomically.
func SaveCSV(rows [][]string, path string, headers []string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if len(headers) > 0 {
		if err := w.Write(headers); err != nil {
			return fmt.Errorf("encode csv header: %w", err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode csv rows: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	return nil
}

// LoadCSV reads all records from path. Every field comes back as text with
// no type inference, and records may have varying lengths.
func LoadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	return records, nil
}
