package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seller-insights-service/internal/models"
)

func TestBuildPromoHeatmap_Dimensions(t *testing.T) {
	records := []models.ProductRecord{
		{SalesCount: 0, PromoLabel: models.NoPromotion},
		{SalesCount: 49, PromoLabel: "Sale"},
		{SalesCount: 120, PromoLabel: models.NoPromotion},
	}

	heatmap := BuildPromoHeatmap(records, 50)

	// Bins cover 0..120 at width 50: [0-49], [50-99], [100-149].
	require.Len(t, heatmap.BinLabels, 3)
	require.Len(t, heatmap.WithPromo, 3)
	require.Len(t, heatmap.WithoutPromo, 3)
	assert.Equal(t, []string{"0-49", "50-99", "100-149"}, heatmap.BinLabels)
}

func TestBuildPromoHeatmap_CellSumEqualsRecordCount(t *testing.T) {
	records := []models.ProductRecord{
		{SalesCount: 3, PromoLabel: "Sale"},
		{SalesCount: 77, PromoLabel: models.NoPromotion},
		{SalesCount: 77, PromoLabel: "Sale"},
		{SalesCount: 200, PromoLabel: models.NoPromotion},
	}

	heatmap := BuildPromoHeatmap(records, 50)

	total := 0
	for i := range heatmap.BinLabels {
		total += heatmap.WithPromo[i] + heatmap.WithoutPromo[i]
	}
	assert.Equal(t, len(records), total)
}

func TestBuildPromoHeatmap_EmptyBinsStayDense(t *testing.T) {
	records := []models.ProductRecord{
		{SalesCount: 0, PromoLabel: models.NoPromotion},
		{SalesCount: 150, PromoLabel: "Sale"},
	}

	heatmap := BuildPromoHeatmap(records, 50)

	require.Len(t, heatmap.BinLabels, 4)
	// Middle bins exist with explicit zero counts.
	assert.Zero(t, heatmap.WithPromo[1])
	assert.Zero(t, heatmap.WithoutPromo[1])
	assert.Zero(t, heatmap.WithPromo[2])
	assert.Zero(t, heatmap.WithoutPromo[2])
}

func TestBuildPromoHeatmap_PromotionDetection(t *testing.T) {
	records := []models.ProductRecord{
		{SalesCount: 10, PromoLabel: "  "},
		{SalesCount: 10, PromoLabel: "Clearance"},
	}

	heatmap := BuildPromoHeatmap(records, 50)

	assert.Equal(t, 1, heatmap.WithPromo[0])
	assert.Equal(t, 1, heatmap.WithoutPromo[0])
}

func TestBuildPromoHeatmap_NegativeSalesCountExcluded(t *testing.T) {
	records := []models.ProductRecord{
		{SalesCount: 100, PromoLabel: "Sale"},
		{SalesCount: -60, PromoLabel: models.NoPromotion},
	}

	heatmap := BuildPromoHeatmap(records, 50)

	require.Len(t, heatmap.BinLabels, 3)
	total := 0
	for i := range heatmap.BinLabels {
		total += heatmap.WithPromo[i] + heatmap.WithoutPromo[i]
	}
	assert.Equal(t, 1, total, "a record with a negative sales count lands in no cell")
}

func TestBuildPromoHeatmap_ZeroBinWidthFallsBack(t *testing.T) {
	records := []models.ProductRecord{{SalesCount: 10}}

	heatmap := BuildPromoHeatmap(records, 0)

	require.Len(t, heatmap.BinLabels, 1)
	assert.Equal(t, "0-49", heatmap.BinLabels[0])
}

func TestBuildPromoHeatmap_NoRecords(t *testing.T) {
	heatmap := BuildPromoHeatmap(nil, 50)

	assert.Empty(t, heatmap.BinLabels)
	assert.Empty(t, heatmap.WithPromo)
	assert.Empty(t, heatmap.WithoutPromo)
}
