package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"seller-insights-service/internal/models"
)

// LegalClient handles communication with the public legal registry
type LegalClient struct {
	baseURL    string
	sellerID   int64
	httpClient *http.Client
}

// legalInfoPayload is the raw registry record
type legalInfoPayload struct {
	SupplierID       int64  `json:"supplierId"`
	SupplierName     string `json:"supplierName"`
	SupplierFullName string `json:"supplierFullName"`
	INN              string `json:"inn"`
	OGRN             string `json:"ogrn"`
	LegalAddress     string `json:"legalAddress"`
	Trademark        string `json:"trademark"`
	KPP              string `json:"kpp"`
	TaxpayerCode     string `json:"taxpayerCode"`
}

var (
	innPattern          = regexp.MustCompile(`^\d{10}$`)
	ogrnPattern         = regexp.MustCompile(`^\d{13}$`)
	kppPattern          = regexp.MustCompile(`^\d{9}$`)
	taxpayerCodePattern = regexp.MustCompile(`^\d{10}$`)
)

// NewLegalClient creates a new legal registry client
func NewLegalClient(sellerID int64) *LegalClient {
	baseURL := os.Getenv("LEGAL_REGISTRY_URL")
	if baseURL == "" {
		baseURL = "https://static-basket.wildberries.ru"
	}

	return &LegalClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		sellerID: sellerID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchLegalInfo retrieves and validates the registered business entity
// record for the seller. Registry identifiers are checked against their
// fixed digit patterns.
func (c *LegalClient) FetchLegalInfo(ctx context.Context) (*models.LegalEntityProfile, error) {
	url := fmt.Sprintf("%s/vol0/data/supplier-by-id/%d.json", c.baseURL, c.sellerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: "legal registry", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: "legal registry", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Endpoint: "legal registry", StatusCode: resp.StatusCode}
	}

	var payload legalInfoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Endpoint: "legal registry", Err: err}
	}

	for _, check := range []struct {
		field   string
		value   string
		pattern *regexp.Regexp
	}{
		{"inn", payload.INN, innPattern},
		{"ogrn", payload.OGRN, ogrnPattern},
		{"kpp", payload.KPP, kppPattern},
		{"taxpayerCode", payload.TaxpayerCode, taxpayerCodePattern},
	} {
		if !check.pattern.MatchString(check.value) {
			return nil, &ValidationError{
				Endpoint: "legal registry",
				Field:    check.field,
				Err:      fmt.Errorf("%q does not match %s", check.value, check.pattern),
			}
		}
	}

	return &models.LegalEntityProfile{
		SupplierID:   payload.SupplierID,
		ShortName:    payload.SupplierName,
		FullName:     payload.SupplierFullName,
		INN:          payload.INN,
		OGRN:         payload.OGRN,
		LegalAddress: payload.LegalAddress,
		Trademark:    payload.Trademark,
		KPP:          payload.KPP,
		TaxpayerCode: payload.TaxpayerCode,
	}, nil
}
