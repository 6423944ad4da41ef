package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"seller-insights-service/internal/analytics"
	"seller-insights-service/internal/models"
	"seller-insights-service/internal/repository"
)

// ChartsHandler serves the chart datasets derived from the current snapshot.
// Every transform is a pure function over the snapshot's records, so the
// handlers here just pick parameters and wrap the result in the response
// envelope.
type ChartsHandler struct {
	repo *repository.SnapshotRepository
}

func NewChartsHandler(repo *repository.SnapshotRepository) *ChartsHandler {
	return &ChartsHandler{repo: repo}
}

// GetABC returns the classic cumulative-share ABC classification
// GET /api/v1/charts/abc
func (h *ChartsHandler) GetABC(c *gin.Context) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	items := analytics.ClassifyABC(snapshot.Records)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":  items,
			"groups": analytics.ABCGroupCounts(items),
		},
	})
}

// GetSalesTiers returns the percentile-based sales tier counts
// GET /api/v1/charts/sales-tiers
func (h *ChartsHandler) GetSalesTiers(c *gin.Context) {
	h.respondCounts(c, analytics.SalesTiers)
}

// GetPriceSegments returns the fixed-boundary price segment counts
// GET /api/v1/charts/price-segments
func (h *ChartsHandler) GetPriceSegments(c *gin.Context) {
	h.respondCounts(c, analytics.PriceSegments)
}

// GetReviewBuckets returns the review-count bucket counts
// GET /api/v1/charts/review-buckets
func (h *ChartsHandler) GetReviewBuckets(c *gin.Context) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", strconv.Itoa(analytics.DefaultReviewThreshold)))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analytics.ReviewBuckets(snapshot.Records, threshold),
	})
}

// GetPromoSplit returns the with/without promotion counts
// GET /api/v1/charts/promo
func (h *ChartsHandler) GetPromoSplit(c *gin.Context) {
	h.respondCounts(c, analytics.PromoSplit)
}

// GetPromoHeatmap returns the dense sales×promotion matrix
// GET /api/v1/charts/promo-heatmap
func (h *ChartsHandler) GetPromoHeatmap(c *gin.Context) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	binWidth, _ := strconv.Atoi(c.DefaultQuery("binWidth", strconv.Itoa(analytics.DefaultHeatmapBinWidth)))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analytics.BuildPromoHeatmap(snapshot.Records, binWidth),
	})
}

// GetDailySales returns the 30-day per-day sales totals
// GET /api/v1/charts/daily-sales
func (h *ChartsHandler) GetDailySales(c *gin.Context) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"days":   models.DailySeriesLength,
			"totals": analytics.TotalDailySales(snapshot.Records),
		},
	})
}

// GetRatingDistribution returns the dense rating histogram
// GET /api/v1/charts/ratings
func (h *ChartsHandler) GetRatingDistribution(c *gin.Context) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	bins, _ := strconv.Atoi(c.DefaultQuery("bins", "20"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analytics.RatingDistribution(snapshot.Records, bins),
	})
}

func (h *ChartsHandler) respondCounts(c *gin.Context, transform func([]models.ProductRecord) map[string]int) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transform(snapshot.Records),
	})
}
