package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveJSON_LoadJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	original := map[string]any{
		"name":    "widget",
		"count":   float64(3),
		"ratio":   0.5,
		"enabled": true,
		"missing": nil,
		"tags":    []any{"a", "b"},
		"nested":  map[string]any{"deep": []any{float64(1), float64(2)}},
	}
	require.NoError(t, SaveJSON(original, path))

	var loaded map[string]any
	require.NoError(t, LoadJSON(path, &loaded))
	assert.Equal(t, original, loaded)
}

func TestSaveJSON_ArrayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	original := []any{"x", float64(7), false, nil}
	require.NoError(t, SaveJSON(original, path))

	var loaded []any
	require.NoError(t, LoadJSON(path, &loaded))
	assert.Equal(t, original, loaded)
}

func TestSaveJSON_FourSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indent.json")
	require.NoError(t, SaveJSON(map[string]any{"key": "value"}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"key\"")
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestSaveJSON_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, SaveJSON(map[string]any{"v": float64(1)}, path))
	require.NoError(t, SaveJSON(map[string]any{"v": float64(2)}, path))

	var loaded map[string]any
	require.NoError(t, LoadJSON(path, &loaded))
	assert.Equal(t, float64(2), loaded["v"])
}

func TestLoadJSON_MissingFile(t *testing.T) {
	var dst any
	err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &dst)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadJSON_TrailingContentRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.json")
	require.NoError(t, os.WriteFile(path, []byte("{}{}"), 0o644))

	var dst any
	err := LoadJSON(path, &dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing content")
}

func TestSaveJSON_UnwritablePath(t *testing.T) {
	err := SaveJSON(map[string]any{}, filepath.Join(t.TempDir(), "no", "such", "dir", "x.json"))
	require.Error(t, err)
}
