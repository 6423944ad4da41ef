package analytics

import (
	"seller-insights-service/internal/models"
)

// LabelFunc assigns a categorical label to a record. Implementations must be
// pure: no mutation, same label for the same record.
type LabelFunc func(models.ProductRecord) string

// CountByLabel applies a label function to every record and aggregates the
// results into a label→count mapping. All pie-style chart datasets are built
// through this single utility rather than re-implementing the group-by per
// chart.
func CountByLabel(records []models.ProductRecord, label LabelFunc) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[label(rec)]++
	}
	return counts
}
