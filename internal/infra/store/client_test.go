package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamedash/config"
	"gamedash/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *client {
	cfg := &config.Config{
		Store: &config.StoreConfig{
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
		},
	}

	return NewClient(cfg).(*client)
}

func TestAppDetails_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appdetails", r.URL.Path)
		assert.Equal(t, "440", r.URL.Query().Get("appids"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"440": {
				"success": true,
				"data": {
					"name": "Team Fortress 2",
					"type": "game",
					"short_description": "Nine distinct classes.",
					"developers": ["Valve"],
					"publishers": ["Valve"],
					"genres": [{"id": "1", "description": "Action"}, {"id": "37", "description": "Free To Play"}],
					"is_free": true
				}
			}
		}`))
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).AppDetails(context.Background(), 440)
	require.NoError(t, err)

	assert.Equal(t, int64(440), details.AppID)
	assert.Equal(t, "Team Fortress 2", details.Name)
	assert.Equal(t, []string{"Valve"}, details.Developers)
	assert.Equal(t, []string{"Action", "Free To Play"}, details.Genres)
	assert.True(t, details.IsFree)
	assert.Nil(t, details.PriceOverview)
}

func TestAppDetails_PriceOverview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"570": {
				"success": true,
				"data": {
					"name": "Some Game",
					"type": "game",
					"price_overview": {"currency": "USD", "initial": 1999, "final": 999, "discount_percent": 50}
				}
			}
		}`))
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).AppDetails(context.Background(), 570)
	require.NoError(t, err)

	require.NotNil(t, details.PriceOverview)
	assert.Equal(t, "USD", details.PriceOverview.Currency)
	assert.Equal(t, int64(999), details.PriceOverview.Final)
	assert.Equal(t, 50, details.PriceOverview.DiscountPercent)
}

func TestAppDetails_UnknownApp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"99999999": {"success": false}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).AppDetails(context.Background(), 99999999)
	assert.ErrorIs(t, err, service.ErrStoreAppNotFound)
}

func TestAppDetails_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).AppDetails(context.Background(), 440)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrStoreAppNotFound)
}
