package store

import (
	"encoding/json"
	"fmt"
	"os"

	"seller-insights-service/internal/models"
)

// AnalyticsStore reads the locally exported analytics snapshot: a JSON array
// of flat per-SKU records produced by the external analytics tool. The file
// is read-only and loaded in full.
type AnalyticsStore struct {
	path string
}

// NewAnalyticsStore creates a store bound to the export file path
func NewAnalyticsStore(path string) *AnalyticsStore {
	return &AnalyticsStore{path: path}
}

// Load reads and decodes the full export. A missing file or malformed JSON
// is a load error; per-record anomalies are left for the merger to handle.
func (s *AnalyticsStore) Load() ([]models.AnalyticsRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read analytics export %s: %w", s.path, err)
	}

	var records []models.AnalyticsRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode analytics export %s: %w", s.path, err)
	}

	return records, nil
}
