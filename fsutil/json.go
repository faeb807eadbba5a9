// Package fsutil provides JSON and CSV file persistence plus directory
// helpers.
//
// Writes are atomic and durable: content lands in a temp file which is
// synced and renamed into place, so a crash mid-write never leaves a
// half-written file at the target path. File-system errors are not handled
// here; they propagate to the caller wrapped with operation context.
//
// Concurrent writers targeting the same path are not coordinated.
package fsutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SaveJSON writes v to path as 4-space indented UTF-8 JSON with a trailing
// newline.
func SaveJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write json %s: %w", path, err)
	}
	return nil
}

// LoadJSON reads path and decodes its JSON content into dst. Content after
// the first JSON value is rejected.
func LoadJSON(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode json %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("decode json %s: trailing content", path)
	}
	return nil
}
