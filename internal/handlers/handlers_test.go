package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"seller-insights-service/internal/models"
	"seller-insights-service/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCatalog struct {
	products []models.CatalogProduct
	err      error
}

func (f *fakeCatalog) FetchProducts(ctx context.Context) ([]models.CatalogProduct, error) {
	return f.products, f.err
}

type fakeProfile struct {
	profile *models.SellerProfile
	err     error
}

func (f *fakeProfile) FetchProfile(ctx context.Context) (*models.SellerProfile, error) {
	return f.profile, f.err
}

type fakeLegal struct {
	info *models.LegalEntityProfile
	err  error
}

func (f *fakeLegal) FetchLegalInfo(ctx context.Context) (*models.LegalEntityProfile, error) {
	return f.info, f.err
}

type fakeFavorites struct {
	count int
	err   error
}

func (f *fakeFavorites) FetchFavoritesCount(ctx context.Context) (int, error) {
	return f.count, f.err
}

type fakeStore struct {
	records []models.AnalyticsRecord
	err     error
}

func (f *fakeStore) Load() ([]models.AnalyticsRecord, error) {
	return f.records, f.err
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// testFixture bundles a repository over stub fetchers. Seeding loads a
// snapshot by running a refresh against the stub data.
type testFixture struct {
	repo      *repository.SnapshotRepository
	catalog   *fakeCatalog
	profile   *fakeProfile
	legal     *fakeLegal
	favorites *fakeFavorites
	store     *fakeStore
}

func newFixture() *testFixture {
	f := &testFixture{
		catalog:   &fakeCatalog{},
		profile:   &fakeProfile{},
		legal:     &fakeLegal{},
		favorites: &fakeFavorites{},
		store:     &fakeStore{},
	}
	f.repo = repository.NewSnapshotRepository(
		f.catalog, f.profile, f.legal, f.favorites, f.store, nil, testLogger(),
	)
	return f
}

func (f *testFixture) seed(t *testing.T, catalog []models.CatalogProduct, records []models.AnalyticsRecord) {
	t.Helper()
	f.catalog.products = catalog
	f.store.records = records
	_, err := f.repo.Refresh(context.Background())
	require.NoError(t, err)
}

func sampleCatalog() []models.CatalogProduct {
	return []models.CatalogProduct{
		{ID: 101, Name: "Bed linen set", Rating: 4.7, ReviewCount: 120, PromoLabel: "Sale", Price: 1290, TotalStock: 15},
		{ID: 102, Name: "Pillow", Rating: 4.1, ReviewCount: 8, PromoLabel: models.NoPromotion, Price: 450, TotalStock: 250},
		{ID: 103, Name: "Blanket", Rating: 4.9, ReviewCount: 40, PromoLabel: "Sale", Price: 2100, TotalStock: 60},
	}
}

func sampleAnalytics() []models.AnalyticsRecord {
	return []models.AnalyticsRecord{
		{SKU: 101, Revenue: 54000, SalesCount: 42, AvgAdBid: 120},
		{SKU: 102, Revenue: 9000, SalesCount: 20},
		{SKU: 103, Revenue: 21000, SalesCount: 10},
	}
}

func doRequest(router *gin.Engine, method, target string, body *string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
