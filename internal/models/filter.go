package models

import "strings"

// AdParticipation filters products by advertising campaign activity, judged
// from the average ad bid.
type AdParticipation string

const (
	AdParticipationAll      AdParticipation = "all"
	AdParticipationActive   AdParticipation = "active"
	AdParticipationInactive AdParticipation = "inactive"
)

// ProductFilter narrows the merged table. Nil range bounds are open; an
// empty promo label list means no promo filtering.
type ProductFilter struct {
	NameQuery   string          `json:"nameQuery,omitempty"`
	MinRating   *float64        `json:"minRating,omitempty"`
	MaxRating   *float64        `json:"maxRating,omitempty"`
	MinPrice    *float64        `json:"minPrice,omitempty"`
	MaxPrice    *float64        `json:"maxPrice,omitempty"`
	MinSales    *int            `json:"minSales,omitempty"`
	MaxSales    *int            `json:"maxSales,omitempty"`
	MinStock    *int            `json:"minStock,omitempty"`
	MaxStock    *int            `json:"maxStock,omitempty"`
	MinReviews  *int            `json:"minReviews,omitempty"`
	MaxReviews  *int            `json:"maxReviews,omitempty"`
	MinDays     *int            `json:"minDays,omitempty"`
	MaxDays     *int            `json:"maxDays,omitempty"`
	PromoLabels []string        `json:"promoLabels,omitempty"`
	Ads         AdParticipation `json:"ads,omitempty"`
}

// Matches reports whether a record passes every configured filter.
func (f ProductFilter) Matches(p ProductRecord) bool {
	if f.NameQuery != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.NameQuery)) {
		return false
	}
	if !inFloatRange(p.Rating, f.MinRating, f.MaxRating) {
		return false
	}
	if !inFloatRange(p.Price, f.MinPrice, f.MaxPrice) {
		return false
	}
	if !inIntRange(p.SalesCount, f.MinSales, f.MaxSales) {
		return false
	}
	if !inIntRange(p.TotalStock, f.MinStock, f.MaxStock) {
		return false
	}
	if !inIntRange(p.ReviewCount, f.MinReviews, f.MaxReviews) {
		return false
	}
	if !inIntRange(p.DaysOnMarketplace, f.MinDays, f.MaxDays) {
		return false
	}
	if len(f.PromoLabels) > 0 && !containsString(f.PromoLabels, p.PromoLabel) {
		return false
	}

	switch f.Ads {
	case AdParticipationActive:
		if p.AvgAdBid <= 0 {
			return false
		}
	case AdParticipationInactive:
		if p.AvgAdBid != 0 {
			return false
		}
	}

	return true
}

// Apply returns the records passing the filter, preserving input order.
func (f ProductFilter) Apply(records []ProductRecord) []ProductRecord {
	filtered := make([]ProductRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func inFloatRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func inIntRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
