package analytics

import (
	"sort"

	"seller-insights-service/internal/models"
)

// ABCGroup labels a product's contribution band in the classic cumulative
// ABC analysis.
type ABCGroup string

const (
	ABCGroupA ABCGroup = "A" // up to 80% of cumulative sales
	ABCGroupB ABCGroup = "B" // 80% to 95%
	ABCGroupC ABCGroup = "C" // the tail above 95%
)

const (
	abcThresholdA = 0.80
	abcThresholdB = 0.95
)

// ABCItem is one classified row of the ABC analysis, ordered by descending
// sales.
type ABCItem struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	SalesCount      int      `json:"salesCount"`
	CumulativeShare float64  `json:"cumulativeShare"`
	Group           ABCGroup `json:"group"`
}

// ClassifyABC runs the classic cumulative-share ABC analysis over the record
// set: sort by descending sales, accumulate the running share of total
// sales, and band each row at the 80%/95% boundaries. The sort is stable so
// that ties keep their snapshot order and repeated runs produce identical
// group boundaries. When total sales is zero every row is banded C, since no
// row contributes any share.
func ClassifyABC(records []models.ProductRecord) []ABCItem {
	if len(records) == 0 {
		return []ABCItem{}
	}

	items := make([]ABCItem, len(records))
	grandTotal := 0
	for i, rec := range records {
		items[i] = ABCItem{
			ID:         rec.ID,
			Name:       rec.Name,
			SalesCount: rec.SalesCount,
		}
		grandTotal += rec.SalesCount
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SalesCount > items[j].SalesCount
	})

	if grandTotal == 0 {
		for i := range items {
			items[i].Group = ABCGroupC
		}
		return items
	}

	running := 0
	for i := range items {
		running += items[i].SalesCount
		share := float64(running) / float64(grandTotal)
		items[i].CumulativeShare = share

		switch {
		case share <= abcThresholdA:
			items[i].Group = ABCGroupA
		case share <= abcThresholdB:
			items[i].Group = ABCGroupB
		default:
			items[i].Group = ABCGroupC
		}
	}

	return items
}

// ABCGroupCounts aggregates classified rows into a group→count mapping.
func ABCGroupCounts(items []ABCItem) map[ABCGroup]int {
	counts := map[ABCGroup]int{
		ABCGroupA: 0,
		ABCGroupB: 0,
		ABCGroupC: 0,
	}
	for _, item := range items {
		counts[item.Group]++
	}
	return counts
}
