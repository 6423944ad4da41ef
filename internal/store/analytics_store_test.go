package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics_export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidExport(t *testing.T) {
	path := writeExport(t, `[
		{"sku":101,"revenue":5400.5,"salesCount":12,"salesSeries":"1,2,3"},
		{"sku":102,"revenue":0,"salesCount":0}
	]`)

	records, err := NewAnalyticsStore(path).Load()

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(101), records[0].SKU)
	assert.Equal(t, 5400.5, records[0].Revenue)
	assert.Equal(t, 12, records[0].SalesCount)
	assert.Equal(t, "1,2,3", records[0].SalesSeries)
}

func TestLoad_EmptyArray(t *testing.T) {
	path := writeExport(t, `[]`)

	records, err := NewAnalyticsStore(path).Load()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.json")

	_, err := NewAnalyticsStore(path).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read analytics export")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeExport(t, `{"not":"an array"}`)

	_, err := NewAnalyticsStore(path).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode analytics export")
}
