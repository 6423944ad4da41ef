package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"seller-insights-service/internal/models"
)

// SellerClient handles communication with the marketplace supplier API
type SellerClient struct {
	baseURL      string
	storePageURL string
	sellerID     int64
	httpClient   *http.Client
}

// sellerProfilePayload is the raw supplier record
type sellerProfilePayload struct {
	ID               int64     `json:"id"`
	Valuation        string    `json:"valuation"`
	FeedbacksCount   int       `json:"feedbacksCount"`
	RegistrationDate time.Time `json:"registrationDate"`
	SaleItemQuantity int       `json:"saleItemQuantity"`
	SuppRatio        int       `json:"suppRatio"`
	IsPremium        bool      `json:"isPremium"`
}

// NewSellerClient creates a new supplier API client
func NewSellerClient(sellerID int64) *SellerClient {
	baseURL := os.Getenv("SELLER_API_URL")
	if baseURL == "" {
		baseURL = "https://suppliers-shipment.wildberries.ru"
	}
	storePageURL := os.Getenv("STORE_PAGE_URL")
	if storePageURL == "" {
		storePageURL = "https://www.wildberries.ru"
	}

	return &SellerClient{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		storePageURL: strings.TrimSuffix(storePageURL, "/"),
		sellerID:     sellerID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchProfile retrieves and validates the seller account profile
func (c *SellerClient) FetchProfile(ctx context.Context) (*models.SellerProfile, error) {
	url := fmt.Sprintf("%s/api/v1/suppliers/%d", c.baseURL, c.sellerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: "seller profile", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: "seller profile", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Endpoint: "seller profile", StatusCode: resp.StatusCode}
	}

	var payload sellerProfilePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Endpoint: "seller profile", Err: err}
	}

	if payload.ID <= 0 {
		return nil, &ValidationError{
			Endpoint: "seller profile",
			Field:    "id",
			Err:      fmt.Errorf("%d is not positive", payload.ID),
		}
	}
	if payload.FeedbacksCount < 0 {
		return nil, &ValidationError{
			Endpoint: "seller profile",
			Field:    "feedbacksCount",
			Err:      fmt.Errorf("%d is negative", payload.FeedbacksCount),
		}
	}
	if payload.SaleItemQuantity < 0 {
		return nil, &ValidationError{
			Endpoint: "seller profile",
			Field:    "saleItemQuantity",
			Err:      fmt.Errorf("%d is negative", payload.SaleItemQuantity),
		}
	}
	if payload.SuppRatio < 0 || payload.SuppRatio > 100 {
		return nil, &ValidationError{
			Endpoint: "seller profile",
			Field:    "suppRatio",
			Err:      fmt.Errorf("%d is outside 0..100", payload.SuppRatio),
		}
	}

	return &models.SellerProfile{
		SellerID:         payload.ID,
		StoreURL:         fmt.Sprintf("%s/seller/%d", c.storePageURL, payload.ID),
		Valuation:        payload.Valuation,
		FeedbackCount:    payload.FeedbacksCount,
		RegistrationDate: payload.RegistrationDate,
		TotalSales:       payload.SaleItemQuantity,
		BuyoutPercent:    payload.SuppRatio,
		IsPremium:        payload.IsPremium,
	}, nil
}
