package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"seller-insights-service/internal/models"
)

// Tier labels shared by the percentile and threshold categorizers. Bucket
// boundaries are inclusive on the lower bound of each named bucket.
const (
	TierHigh = "high"
	TierMid  = "mid"
	TierLow  = "low"
	TierNone = "none"
)

// Promotion split labels
const (
	PromoWith    = "with promotion"
	PromoWithout = "without promotion"
)

// Price segment cutoffs in whole currency units
const (
	PriceSegmentLowMax = 500.0
	PriceSegmentMidMax = 1500.0
)

// DefaultReviewThreshold separates "few reviews" from "many reviews"
const DefaultReviewThreshold = 20

// SalesTiers splits products into three tiers at the 33rd and 66th
// percentiles of the sales count: high above p66, mid within [p33, p66],
// low below p33.
func SalesTiers(records []models.ProductRecord) map[string]int {
	if len(records) == 0 {
		return map[string]int{}
	}

	values := make([]float64, len(records))
	for i, rec := range records {
		values[i] = float64(rec.SalesCount)
	}
	p33 := quantile(values, 0.33)
	p66 := quantile(values, 0.66)

	return CountByLabel(records, func(rec models.ProductRecord) string {
		sales := float64(rec.SalesCount)
		switch {
		case sales > p66:
			return TierHigh
		case sales >= p33:
			return TierMid
		default:
			return TierLow
		}
	})
}

// ReviewBuckets splits products by review count: none (exactly zero), low
// (1 up to and including the threshold), high (above the threshold).
func ReviewBuckets(records []models.ProductRecord, threshold int) map[string]int {
	if threshold <= 0 {
		threshold = DefaultReviewThreshold
	}
	return CountByLabel(records, func(rec models.ProductRecord) string {
		switch {
		case rec.ReviewCount == 0:
			return TierNone
		case rec.ReviewCount <= threshold:
			return TierLow
		default:
			return TierHigh
		}
	})
}

// PriceSegments buckets products against the two fixed price cutoffs:
// low below 500, mid within [500, 1500], high above 1500.
func PriceSegments(records []models.ProductRecord) map[string]int {
	return CountByLabel(records, func(rec models.ProductRecord) string {
		switch {
		case rec.Price < PriceSegmentLowMax:
			return TierLow
		case rec.Price <= PriceSegmentMidMax:
			return TierMid
		default:
			return TierHigh
		}
	})
}

// PromoSplit counts products with and without an active promotion.
func PromoSplit(records []models.ProductRecord) map[string]int {
	return CountByLabel(records, func(rec models.ProductRecord) string {
		if HasPromotion(rec.PromoLabel) {
			return PromoWith
		}
		return PromoWithout
	})
}

// HasPromotion reports whether a promo label names an actual promotion: the
// trimmed, lowercased value must be non-empty and differ from the canonical
// no-promotion sentinel.
func HasPromotion(label string) bool {
	val := strings.ToLower(strings.TrimSpace(label))
	return val != "" && val != models.NoPromotion
}

// RatingBin is one dense bucket of the rating histogram.
type RatingBin struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

const ratingScaleMax = 5.0

// RatingDistribution builds a dense fixed-width histogram of product ratings
// over the 0..5 scale. Ratings at the top of the scale land in the last bin.
func RatingDistribution(records []models.ProductRecord, binCount int) []RatingBin {
	if binCount <= 0 {
		binCount = 20
	}
	width := ratingScaleMax / float64(binCount)

	bins := make([]RatingBin, binCount)
	for i := range bins {
		lo := float64(i) * width
		bins[i].Label = fmt.Sprintf("%.2f-%.2f", lo, lo+width)
	}

	for _, rec := range records {
		rating := math.Max(rec.Rating, 0)
		idx := int(rating / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx].Count++
	}

	return bins
}

// quantile returns the q-quantile of values using linear interpolation
// between closest ranks. values may arrive in any order.
func quantile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
