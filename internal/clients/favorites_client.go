package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// FavoritesClient handles the favorites-count lookup on the storefront API
type FavoritesClient struct {
	baseURL    string
	brandID    int64
	httpClient *http.Client
}

// favoritesPayload wraps the votes counter
type favoritesPayload struct {
	Value *favoritesValue `json:"value"`
}

type favoritesValue struct {
	VotesCount int `json:"votesCount"`
}

// NewFavoritesClient creates a new storefront favorites client
func NewFavoritesClient(brandID int64) *FavoritesClient {
	baseURL := os.Getenv("FAVORITES_API_URL")
	if baseURL == "" {
		baseURL = "https://www.wildberries.ru"
	}

	return &FavoritesClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		brandID: brandID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchFavoritesCount returns how many shoppers favorited the store
func (c *FavoritesClient) FetchFavoritesCount(ctx context.Context) (int, error) {
	endpoint := c.baseURL + "/webapi/favorites/brand/getvotesbyid"
	form := url.Values{"brandId": {strconv.FormatInt(c.brandID, 10)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, &FetchError{Endpoint: "favorites count", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &FetchError{Endpoint: "favorites count", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &FetchError{Endpoint: "favorites count", StatusCode: resp.StatusCode}
	}

	var payload favoritesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, &FetchError{Endpoint: "favorites count", Err: err}
	}
	if payload.Value == nil {
		return 0, &ValidationError{
			Endpoint: "favorites count",
			Field:    "value.votesCount",
			Err:      fmt.Errorf("missing in response"),
		}
	}
	if payload.Value.VotesCount < 0 {
		return 0, &ValidationError{
			Endpoint: "favorites count",
			Field:    "value.votesCount",
			Err:      fmt.Errorf("%d is negative", payload.Value.VotesCount),
		}
	}

	return payload.Value.VotesCount, nil
}
