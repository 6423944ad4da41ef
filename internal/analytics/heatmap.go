package analytics

import (
	"fmt"

	"seller-insights-service/internal/models"
)

// DefaultHeatmapBinWidth is the sales-count bin width used when the caller
// does not specify one.
const DefaultHeatmapBinWidth = 50

// PromoHeatmap is the dense sales×promotion cross-tabulation: one column per
// fixed-width sales bin, one row per promotion state. Empty bins stay in the
// matrix with a zero count.
type PromoHeatmap struct {
	BinLabels    []string `json:"binLabels"`
	WithPromo    []int    `json:"withPromo"`
	WithoutPromo []int    `json:"withoutPromo"`
}

// BuildPromoHeatmap partitions the sales-count domain into fixed-width bins
// starting at zero and counts records per (promotion state, bin) cell. The
// bin range always covers the maximum observed sales count, so every record
// with a valid count lands in exactly one cell; records with a negative
// count are excluded.
func BuildPromoHeatmap(records []models.ProductRecord, binWidth int) PromoHeatmap {
	if binWidth <= 0 {
		binWidth = DefaultHeatmapBinWidth
	}

	if len(records) == 0 {
		return PromoHeatmap{
			BinLabels:    []string{},
			WithPromo:    []int{},
			WithoutPromo: []int{},
		}
	}

	maxSales := 0
	for _, rec := range records {
		if rec.SalesCount > maxSales {
			maxSales = rec.SalesCount
		}
	}

	binCount := maxSales/binWidth + 1
	heatmap := PromoHeatmap{
		BinLabels:    make([]string, binCount),
		WithPromo:    make([]int, binCount),
		WithoutPromo: make([]int, binCount),
	}
	for i := 0; i < binCount; i++ {
		lo := i * binWidth
		heatmap.BinLabels[i] = fmt.Sprintf("%d-%d", lo, lo+binWidth-1)
	}

	for _, rec := range records {
		if rec.SalesCount < 0 {
			continue
		}
		idx := rec.SalesCount / binWidth
		if HasPromotion(rec.PromoLabel) {
			heatmap.WithPromo[idx]++
		} else {
			heatmap.WithoutPromo[idx]++
		}
	}

	return heatmap
}
