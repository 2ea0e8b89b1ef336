// Package store implements the client for the external game store API.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gamedash/config"
	"gamedash/internal/domain/entity"
	"gamedash/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// client talks to the store's public appdetails endpoint.
type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a store API client from the configuration. A nil or
// empty store config falls back to sane defaults for the public endpoint.
func NewClient(cfg *config.Config) service.StoreClient {
	baseURL := "https://store.steampowered.com/api"
	timeout := defaultTimeout
	if cfg.Store != nil {
		if cfg.Store.BaseURL != "" {
			baseURL = cfg.Store.BaseURL
		}
		if cfg.Store.Timeout > 0 {
			timeout = cfg.Store.Timeout
		}
	}

	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// appDetailsResponse mirrors the upstream envelope: a map keyed by the
// requested app ID, each entry carrying a success flag and the payload.
type appDetailsResponse map[string]struct {
	Success bool           `json:"success"`
	Data    appDetailsData `json:"data"`
}

type appDetailsData struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	ShortDescription string   `json:"short_description"`
	Developers       []string `json:"developers"`
	Publishers       []string `json:"publishers"`
	Genres           []struct {
		Description string `json:"description"`
	} `json:"genres"`
	IsFree        bool `json:"is_free"`
	PriceOverview *struct {
		Currency        string `json:"currency"`
		Initial         int64  `json:"initial"`
		Final           int64  `json:"final"`
		DiscountPercent int    `json:"discount_percent"`
	} `json:"price_overview"`
}

// AppDetails fetches and flattens the store metadata for one app.
func (c *client) AppDetails(ctx context.Context, appID int64) (*entity.StoreAppDetails, error) {
	endpoint := fmt.Sprintf("%s/appdetails?appids=%s", c.baseURL, url.QueryEscape(strconv.FormatInt(appID, 10)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build store request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "store request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("store responded with status %d", resp.StatusCode)
	}

	var envelope appDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode store response")
	}

	entry, ok := envelope[strconv.FormatInt(appID, 10)]
	if !ok || !entry.Success {
		return nil, service.ErrStoreAppNotFound
	}

	details := &entity.StoreAppDetails{
		AppID:            appID,
		Name:             entry.Data.Name,
		Type:             entry.Data.Type,
		ShortDescription: entry.Data.ShortDescription,
		Developers:       entry.Data.Developers,
		Publishers:       entry.Data.Publishers,
		IsFree:           entry.Data.IsFree,
	}
	for _, g := range entry.Data.Genres {
		details.Genres = append(details.Genres, g.Description)
	}
	if p := entry.Data.PriceOverview; p != nil {
		details.PriceOverview = &entity.Price{
			Currency:        p.Currency,
			Initial:         p.Initial,
			Final:           p.Final,
			DiscountPercent: p.DiscountPercent,
		}
	}

	return details, nil
}
