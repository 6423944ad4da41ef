package models

import "fmt"

// ExportFormat represents the file format for table export
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportColumn defines one column of the exported product table
type ExportColumn struct {
	Name  string                          `json:"name"`
	Width float64                         `json:"width"`
	Value func(ProductRecord) interface{} `json:"-"`
}

// ProductExportColumns returns the column layout for the table export, in
// display order. The turnover column is deliberately omitted, matching the
// dashboard table view.
func ProductExportColumns() []ExportColumn {
	return []ExportColumn{
		{Name: "Name", Width: 40, Value: func(p ProductRecord) interface{} { return p.Name }},
		{Name: "Rating", Width: 10, Value: func(p ProductRecord) interface{} { return p.Rating }},
		{Name: "Reviews", Width: 12, Value: func(p ProductRecord) interface{} { return p.ReviewCount }},
		{Name: "Promotion", Width: 24, Value: func(p ProductRecord) interface{} { return p.PromoLabel }},
		{Name: "Price", Width: 12, Value: func(p ProductRecord) interface{} { return p.Price }},
		{Name: "Total Stock", Width: 12, Value: func(p ProductRecord) interface{} { return p.TotalStock }},
		{Name: "SKU", Width: 14, Value: func(p ProductRecord) interface{} { return p.SKU }},
		{Name: "Sales", Width: 10, Value: func(p ProductRecord) interface{} { return p.SalesCount }},
		{Name: "Days on Marketplace", Width: 20, Value: func(p ProductRecord) interface{} { return p.DaysOnMarketplace }},
		{Name: "Avg Ad Bid", Width: 12, Value: func(p ProductRecord) interface{} { return p.AvgAdBid }},
		{Name: "Revenue", Width: 14, Value: func(p ProductRecord) interface{} { return p.Revenue }},
		{Name: "Lost Revenue", Width: 14, Value: func(p ProductRecord) interface{} { return p.LostRevenue }},
		{Name: "Product URL", Width: 46, Value: func(p ProductRecord) interface{} { return p.ProductURL }},
	}
}

// ExportFilename builds the attachment filename for a given format.
func ExportFilename(format ExportFormat) string {
	return fmt.Sprintf("products_export.%s", format)
}
