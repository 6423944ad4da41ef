package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoritesTestClient(t *testing.T, handler http.Handler) *FavoritesClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("FAVORITES_API_URL", server.URL)

	return NewFavoritesClient(77)
}

func TestFetchFavoritesCount_Success(t *testing.T) {
	client := newFavoritesTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "77", r.PostForm.Get("brandId"))
		fmt.Fprint(w, `{"value":{"votesCount":1534}}`)
	}))

	count, err := client.FetchFavoritesCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1534, count)
}

func TestFetchFavoritesCount_MissingValue(t *testing.T) {
	client := newFavoritesTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	_, err := client.FetchFavoritesCount(context.Background())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "value.votesCount", validationErr.Field)
}

func TestFetchFavoritesCount_NonSuccessStatus(t *testing.T) {
	client := newFavoritesTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.FetchFavoritesCount(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}
