package analytics

import (
	"strconv"
	"strings"

	"seller-insights-service/internal/models"
)

// ParseDailySeries parses a comma-separated daily sales string into its
// numeric form. A series is well-formed only when every entry parses and the
// length is exactly models.DailySeriesLength; anything else is treated as
// absent, never zero-filled.
func ParseDailySeries(raw string) ([]float64, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != models.DailySeriesLength {
		return nil, false
	}

	series := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, false
		}
		series[i] = v
	}

	return series, true
}

// TotalDailySales sums daily sales across all records carrying a well-formed
// series. Records with a missing or malformed series are skipped. Zero valid
// series still yields a full-length all-zero result.
func TotalDailySales(records []models.ProductRecord) []float64 {
	totals := make([]float64, models.DailySeriesLength)
	for _, rec := range records {
		series, ok := ParseDailySeries(rec.SalesSeries)
		if !ok {
			continue
		}
		for day, v := range series {
			totals[day] += v
		}
	}
	return totals
}
