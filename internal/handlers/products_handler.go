package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"seller-insights-service/internal/models"
	"seller-insights-service/internal/repository"
)

// ProductsHandler serves the merged product table, its export and the
// snapshot refresh operation.
type ProductsHandler struct {
	repo   *repository.SnapshotRepository
	logger *logrus.Logger
}

func NewProductsHandler(repo *repository.SnapshotRepository, logger *logrus.Logger) *ProductsHandler {
	return &ProductsHandler{repo: repo, logger: logger}
}

// ProductRow is one table row: the merged record plus its stock level flag
// for row highlighting.
type ProductRow struct {
	models.ProductRecord
	StockLevel models.StockLevel `json:"stockLevel"`
}

// GetProducts returns the filtered product table
// GET /api/v1/products
func (h *ProductsHandler) GetProducts(c *gin.Context) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	filter := parseProductFilter(c)
	filtered := filter.Apply(snapshot.Records)

	rows := make([]ProductRow, len(filtered))
	for i, rec := range filtered {
		rows[i] = ProductRow{ProductRecord: rec, StockLevel: rec.StockLevelFlag()}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
		"meta": gin.H{
			"snapshotVersion": snapshot.Version,
			"builtAt":         snapshot.BuiltAt,
			"total":           len(snapshot.Records),
			"filtered":        len(rows),
		},
	})
}

// ExportRequest configures the table export
type ExportRequest struct {
	Format models.ExportFormat  `json:"format"`
	Filter models.ProductFilter `json:"filter"`
}

// ExportProducts serializes the filtered table to a spreadsheet
// POST /api/v1/products/export
func (h *ProductsHandler) ExportProducts(c *gin.Context) {
	snapshot := h.repo.Current()
	if snapshot == nil {
		respondSnapshotUnavailable(c)
		return
	}

	req := ExportRequest{Format: models.ExportFormatXLSX}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if req.Format == "" {
		req.Format = models.ExportFormatXLSX
	}

	filtered := req.Filter.Apply(snapshot.Records)
	columns := models.ProductExportColumns()

	switch req.Format {
	case models.ExportFormatCSV:
		h.writeCSV(c, columns, filtered)
	case models.ExportFormatXLSX:
		h.writeXLSX(c, columns, filtered)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: fmt.Sprintf("Unsupported export format %q", req.Format),
				Field:   "format",
			},
		})
	}
}

func (h *ProductsHandler) writeCSV(c *gin.Context, columns []models.ExportColumn, records []models.ProductRecord) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+models.ExportFilename(models.ExportFormatCSV))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}
	writer.Write(headers)

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = fmt.Sprint(col.Value(rec))
		}
		writer.Write(row)
	}
}

func (h *ProductsHandler) writeXLSX(c *gin.Context, columns []models.ExportColumn, records []models.ProductRecord) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.Name)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, col.Width)
	}

	for rowIdx, rec := range records {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, col.Value(rec))
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+models.ExportFilename(models.ExportFormatXLSX))

	if err := f.Write(c.Writer); err != nil {
		h.logger.WithError(err).Error("Failed to stream XLSX export")
	}
}

// Refresh rebuilds the snapshot from the remote catalog and the local
// analytics export. On failure the previous snapshot keeps serving.
// POST /api/v1/refresh
func (h *ProductsHandler) Refresh(c *gin.Context) {
	snapshot, err := h.repo.Refresh(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Snapshot refresh failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FETCH_FAILED",
				Message: "Failed to refresh data; the previous snapshot remains available",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"snapshotVersion": snapshot.Version,
			"builtAt":         snapshot.BuiltAt,
			"records":         len(snapshot.Records),
		},
	})
}

// parseProductFilter reads table filters from query parameters
func parseProductFilter(c *gin.Context) models.ProductFilter {
	filter := models.ProductFilter{
		NameQuery: c.Query("search"),
		Ads:       models.AdParticipationAll,
	}

	filter.MinRating = floatQuery(c, "minRating")
	filter.MaxRating = floatQuery(c, "maxRating")
	filter.MinPrice = floatQuery(c, "minPrice")
	filter.MaxPrice = floatQuery(c, "maxPrice")
	filter.MinSales = intQuery(c, "minSales")
	filter.MaxSales = intQuery(c, "maxSales")
	filter.MinStock = intQuery(c, "minStock")
	filter.MaxStock = intQuery(c, "maxStock")
	filter.MinReviews = intQuery(c, "minReviews")
	filter.MaxReviews = intQuery(c, "maxReviews")
	filter.MinDays = intQuery(c, "minDays")
	filter.MaxDays = intQuery(c, "maxDays")

	if promos := c.Query("promo"); promos != "" {
		filter.PromoLabels = strings.Split(promos, ",")
	}
	if ads := c.Query("ads"); ads != "" {
		filter.Ads = models.AdParticipation(ads)
	}

	return filter
}

func floatQuery(c *gin.Context, key string) *float64 {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return &v
		}
	}
	return nil
}

func intQuery(c *gin.Context, key string) *int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return &v
		}
	}
	return nil
}

func respondSnapshotUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "SNAPSHOT_UNAVAILABLE",
			Message: "No dataset loaded yet; trigger a refresh first",
		},
	})
}
