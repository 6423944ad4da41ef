package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"seller-insights-service/internal/models"
)

// CatalogClient handles communication with the marketplace catalog API
type CatalogClient struct {
	baseURL        string
	productPageURL string
	brandID        int64
	httpClient     *http.Client
}

// feedNoPromotionLabel is the listing's own sentinel for "no promotion".
// It is folded into models.NoPromotion during normalization so downstream
// promotion checks only ever deal with the canonical constant.
const feedNoPromotionLabel = "Нет акции"

// catalogPage is the paginated catalog listing envelope
type catalogPage struct {
	Data *catalogData `json:"data"`
}

type catalogData struct {
	Products []catalogProductPayload `json:"products"`
}

// catalogProductPayload is one raw product entry from the listing
type catalogProductPayload struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	ReviewRating  float64               `json:"reviewRating"`
	Feedbacks     int                   `json:"feedbacks"`
	PromoTextCard *string               `json:"promoTextCard"`
	TotalQuantity int                   `json:"totalQuantity"`
	Colors        []catalogColorPayload `json:"colors"`
	Pics          int                   `json:"pics"`
	Sizes         []catalogSizePayload  `json:"sizes"`
}

type catalogColorPayload struct {
	Name string `json:"name"`
}

type catalogSizePayload struct {
	Price catalogPricePayload `json:"price"`
}

type catalogPricePayload struct {
	Total int64 `json:"total"`
}

// NewCatalogClient creates a new catalog client for the configured brand
func NewCatalogClient(brandID int64) *CatalogClient {
	baseURL := os.Getenv("CATALOG_API_URL")
	if baseURL == "" {
		baseURL = "https://catalog.wildberries.ru"
	}
	productPageURL := os.Getenv("PRODUCT_PAGE_URL")
	if productPageURL == "" {
		productPageURL = "https://www.wildberries.ru"
	}

	return &CatalogClient{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		productPageURL: strings.TrimSuffix(productPageURL, "/"),
		brandID:        brandID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchProducts walks the paginated catalog listing, advancing the page
// counter until an empty page is returned, and normalizes every entry.
// The first page-level failure stops the walk and is returned as-is.
func (c *CatalogClient) FetchProducts(ctx context.Context) ([]models.CatalogProduct, error) {
	var products []models.CatalogProduct

	for page := 1; ; page++ {
		entries, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			break
		}

		for _, entry := range entries {
			product, err := normalizeCatalogProduct(entry)
			if err != nil {
				return nil, &ValidationError{Endpoint: "catalog listing", Err: err}
			}
			product.ProductURL = fmt.Sprintf("%s/catalog/%d/detail.aspx", c.productPageURL, product.ID)
			products = append(products, product)
		}
	}

	return products, nil
}

func (c *CatalogClient) fetchPage(ctx context.Context, page int) ([]catalogProductPayload, error) {
	url := fmt.Sprintf("%s/brands/v2/catalog?brand=%d&page=%d", c.baseURL, c.brandID, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: "catalog listing", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: "catalog listing", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Endpoint: "catalog listing", StatusCode: resp.StatusCode}
	}

	var payload catalogPage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Endpoint: "catalog listing", Err: err}
	}
	if payload.Data == nil {
		return nil, &ValidationError{
			Endpoint: "catalog listing",
			Field:    "data.products",
			Err:      errors.New("missing in response"),
		}
	}

	return payload.Data.Products, nil
}

// normalizeCatalogProduct validates a raw listing entry and flattens it into
// the catalog record shape. Prices arrive in minor currency units; the first
// size's price is taken, 0 when no sizes are listed.
func normalizeCatalogProduct(entry catalogProductPayload) (models.CatalogProduct, error) {
	if entry.ID <= 0 {
		return models.CatalogProduct{}, fmt.Errorf("product id %d is not positive", entry.ID)
	}
	if entry.Feedbacks < 0 {
		return models.CatalogProduct{}, fmt.Errorf("product %d: negative feedback count %d", entry.ID, entry.Feedbacks)
	}
	if entry.TotalQuantity < 0 {
		return models.CatalogProduct{}, fmt.Errorf("product %d: negative total quantity %d", entry.ID, entry.TotalQuantity)
	}
	if entry.Pics < 0 {
		return models.CatalogProduct{}, fmt.Errorf("product %d: negative photo count %d", entry.ID, entry.Pics)
	}

	price := 0.0
	if len(entry.Sizes) > 0 {
		total := entry.Sizes[0].Price.Total
		if total < 0 {
			return models.CatalogProduct{}, fmt.Errorf("product %d: negative price %d", entry.ID, total)
		}
		price = float64(total) / 100
	}

	promo := models.NoPromotion
	if entry.PromoTextCard != nil {
		label := strings.TrimSpace(*entry.PromoTextCard)
		if label != "" && !strings.EqualFold(label, feedNoPromotionLabel) {
			promo = label
		}
	}

	return models.CatalogProduct{
		ID:          entry.ID,
		Name:        entry.Name,
		Rating:      entry.ReviewRating,
		ReviewCount: entry.Feedbacks,
		PromoLabel:  promo,
		Price:       price,
		TotalStock:  entry.TotalQuantity,
		ColorCount:  len(entry.Colors),
		PhotoCount:  entry.Pics,
	}, nil
}
