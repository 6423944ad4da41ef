package analytics

import (
	"seller-insights-service/internal/models"
)

// Merge joins catalog records with the analytics export on the shared
// numeric product identifier. The join is left-inner: a product appears in
// the output only when both sides carry it. Unmatched records on either side
// are silently dropped, and a missing or malformed join key excludes only
// that record. Export records with a negative sales count are excluded the
// same way, so downstream aggregations never see one. Output order follows
// catalog fetch order.
func Merge(catalog []models.CatalogProduct, analytics []models.AnalyticsRecord) []models.ProductRecord {
	// Key normalization up front: the export names the identifier "sku",
	// the catalog names it "id". Resolving that here keeps the lookup
	// itself free of per-field renaming.
	bySKU := make(map[int64]models.AnalyticsRecord, len(analytics))
	for _, rec := range analytics {
		if rec.SKU <= 0 || rec.SalesCount < 0 {
			continue
		}
		bySKU[rec.SKU] = rec
	}

	merged := make([]models.ProductRecord, 0, len(catalog))
	for _, product := range catalog {
		rec, ok := bySKU[product.ID]
		if !ok {
			continue
		}

		merged = append(merged, models.ProductRecord{
			ID:          product.ID,
			SKU:         rec.SKU,
			Name:        product.Name,
			Rating:      product.Rating,
			ReviewCount: product.ReviewCount,
			PromoLabel:  product.PromoLabel,
			Price:       product.Price,
			TotalStock:  product.TotalStock,
			ColorCount:  product.ColorCount,
			PhotoCount:  product.PhotoCount,
			ProductURL:  product.ProductURL,

			Revenue:             rec.Revenue,
			LostRevenue:         rec.LostRevenue,
			SalesCount:          rec.SalesCount,
			SalesSeries:         rec.SalesSeries,
			TurnoverDays:        rec.TurnoverDays,
			StockSeries:         rec.StockSeries,
			DiscountPercent:     rec.DiscountPercent,
			PriceSeries:         rec.PriceSeries,
			FractionalRating:    rec.FractionalRating,
			RecentReviewsRating: rec.RecentReviewsRating,
			DaysOnMarketplace:   rec.DaysOnMarketplace,
			AvgAdBid:            rec.AvgAdBid,
		})
	}

	return merged
}
