package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seller-insights-service/internal/models"
)

func newCatalogTestClient(t *testing.T, handler http.Handler) *CatalogClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("CATALOG_API_URL", server.URL)
	t.Setenv("PRODUCT_PAGE_URL", "https://market.example")

	return NewCatalogClient(77)
}

func catalogPageBody(products string) string {
	return fmt.Sprintf(`{"data":{"products":[%s]}}`, products)
}

func TestFetchProducts_PaginatesUntilEmptyPage(t *testing.T) {
	client := newCatalogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, catalogPageBody(`
				{"id":101,"name":"Bed linen","reviewRating":4.7,"feedbacks":12,
				 "promoTextCard":"Sale -20%","totalQuantity":40,
				 "colors":[{"name":"white"},{"name":"grey"}],"pics":6,
				 "sizes":[{"price":{"total":129000}}]},
				{"id":102,"name":"Pillow","reviewRating":4.1,"feedbacks":0,
				 "totalQuantity":5,"colors":[],"pics":2,"sizes":[]}`))
		case "2":
			fmt.Fprint(w, catalogPageBody(`
				{"id":103,"name":"Blanket","reviewRating":5,"feedbacks":3,
				 "totalQuantity":10,"colors":[{"name":"blue"}],"pics":1,
				 "sizes":[{"price":{"total":210050}}]}`))
		default:
			fmt.Fprint(w, catalogPageBody(""))
		}
	}))

	products, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 3)

	first := products[0]
	assert.Equal(t, int64(101), first.ID)
	assert.Equal(t, 1290.0, first.Price, "minor units are converted to whole currency units")
	assert.Equal(t, "Sale -20%", first.PromoLabel)
	assert.Equal(t, 2, first.ColorCount)
	assert.Equal(t, "https://market.example/catalog/101/detail.aspx", first.ProductURL)

	second := products[1]
	assert.Equal(t, models.NoPromotion, second.PromoLabel, "absent promo label normalizes to the sentinel")
	assert.Zero(t, second.Price, "no sizes means no price")

	assert.Equal(t, 2100.5, products[2].Price)
}

func TestFetchProducts_LocalizedNoPromotionSentinel(t *testing.T) {
	client := newCatalogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, catalogPageBody(`
				{"id":101,"name":"A","promoTextCard":"Нет акции","totalQuantity":1,"pics":1},
				{"id":102,"name":"B","promoTextCard":" нет акции ","totalQuantity":1,"pics":1},
				{"id":103,"name":"C","promoTextCard":"Hot sale","totalQuantity":1,"pics":1}`))
			return
		}
		fmt.Fprint(w, catalogPageBody(""))
	}))

	products, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, models.NoPromotion, products[0].PromoLabel, "the feed's own sentinel is folded into the canonical one")
	assert.Equal(t, models.NoPromotion, products[1].PromoLabel, "folding ignores case and surrounding spaces")
	assert.Equal(t, "Hot sale", products[2].PromoLabel)
}

func TestFetchProducts_NonSuccessStatus(t *testing.T) {
	client := newCatalogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.FetchProducts(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
}

func TestFetchProducts_MissingDataShape(t *testing.T) {
	client := newCatalogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"unexpected":true}`)
	}))

	_, err := client.FetchProducts(context.Background())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "data.products", validationErr.Field)
}

func TestFetchProducts_NegativeCountsRejected(t *testing.T) {
	client := newCatalogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, catalogPageBody(`
				{"id":101,"name":"Bad","feedbacks":-1,"totalQuantity":1,"pics":1}`))
			return
		}
		fmt.Fprint(w, catalogPageBody(""))
	}))

	_, err := client.FetchProducts(context.Background())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestFetchProducts_UnparseableBody(t *testing.T) {
	client := newCatalogTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))

	_, err := client.FetchProducts(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.False(t, errors.Is(err, context.Canceled))
}
