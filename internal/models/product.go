package models

import (
	"time"

	"github.com/google/uuid"
)

// StockLevel flags how healthy a product's remaining stock is.
type StockLevel string

const (
	StockLevelLow    StockLevel = "LOW"    // fewer than 30 units left
	StockLevelMedium StockLevel = "MEDIUM" // fewer than 100 units left
	StockLevelHigh   StockLevel = "HIGH"
)

const (
	stockLowThreshold    = 30
	stockMediumThreshold = 100
)

// NoPromotion is the canonical sentinel stored when a product carries no
// promotional label. Fetchers normalize empty/absent labels to this value,
// so downstream code never sees a raw empty string.
const NoPromotion = "no promotion"

// DailySeriesLength is the number of entries a well-formed daily sales
// series must contain (one per day over the trailing month).
const DailySeriesLength = 30

// CatalogProduct is a product as normalized from the marketplace catalog
// listing. Prices arrive in minor currency units and are converted to whole
// units here; promo labels are normalized to NoPromotion when absent.
type CatalogProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	PromoLabel  string  `json:"promoLabel"`
	Price       float64 `json:"price"`
	TotalStock  int     `json:"totalStock"`
	ColorCount  int     `json:"colorCount"`
	PhotoCount  int     `json:"photoCount"`
	ProductURL  string  `json:"productUrl"`
}

// AnalyticsRecord is one row of the locally exported analytics snapshot.
// The export is a JSON array of flat records keyed by SKU; the SKU carries
// the same numeric identifier the catalog listing uses.
type AnalyticsRecord struct {
	SKU                 int64   `json:"sku"`
	Revenue             float64 `json:"revenue"`
	LostRevenue         float64 `json:"lostRevenue"`
	SalesCount          int     `json:"salesCount"`
	SalesSeries         string  `json:"salesSeries"`
	TurnoverDays        float64 `json:"turnoverDays"`
	StockSeries         string  `json:"stockSeries"`
	DiscountPercent     float64 `json:"discountPercent"`
	PriceSeries         string  `json:"priceSeries"`
	FractionalRating    float64 `json:"fractionalRating"`
	RecentReviewsRating float64 `json:"recentReviewsRating"`
	DaysOnMarketplace   int     `json:"daysOnMarketplace"`
	AvgAdBid            float64 `json:"avgAdBid"`
}

// ProductRecord is the central merged entity: catalog attributes joined with
// the analytics export for the same product ID. Records are immutable after
// merge; transforms compute derived fields into copies, never back into the
// snapshot.
type ProductRecord struct {
	ID          int64   `json:"id"`
	SKU         int64   `json:"sku"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	PromoLabel  string  `json:"promoLabel"`
	Price       float64 `json:"price"`
	TotalStock  int     `json:"totalStock"`
	ColorCount  int     `json:"colorCount"`
	PhotoCount  int     `json:"photoCount"`
	ProductURL  string  `json:"productUrl"`

	Revenue             float64 `json:"revenue"`
	LostRevenue         float64 `json:"lostRevenue"`
	SalesCount          int     `json:"salesCount"`
	SalesSeries         string  `json:"salesSeries"`
	TurnoverDays        float64 `json:"turnoverDays"`
	StockSeries         string  `json:"stockSeries"`
	DiscountPercent     float64 `json:"discountPercent"`
	PriceSeries         string  `json:"priceSeries"`
	FractionalRating    float64 `json:"fractionalRating"`
	RecentReviewsRating float64 `json:"recentReviewsRating"`
	DaysOnMarketplace   int     `json:"daysOnMarketplace"`
	AvgAdBid            float64 `json:"avgAdBid"`
}

// StockLevelFlag buckets the record's remaining stock for table highlighting.
func (p ProductRecord) StockLevelFlag() StockLevel {
	switch {
	case p.TotalStock < stockLowThreshold:
		return StockLevelLow
	case p.TotalStock < stockMediumThreshold:
		return StockLevelMedium
	default:
		return StockLevelHigh
	}
}

// Snapshot is an immutable, versioned point-in-time copy of the merged
// dataset. A refresh builds a complete new Snapshot and swaps it in
// atomically; in-flight readers keep the version they started with.
type Snapshot struct {
	Version uuid.UUID       `json:"version"`
	BuiltAt time.Time       `json:"builtAt"`
	Records []ProductRecord `json:"records"`
}
