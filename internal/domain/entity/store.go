// Package entity contains the core business objects of the project.
package entity

// StoreAppDetails is the read-only subset of an external store's app
// metadata that the proxy endpoints expose. It is never persisted.
type StoreAppDetails struct {
	AppID            int64    `json:"app_id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	ShortDescription string   `json:"short_description"`
	Developers       []string `json:"developers"`
	Publishers       []string `json:"publishers"`
	Genres           []string `json:"genres"`
	IsFree           bool     `json:"is_free"`
	PriceOverview    *Price   `json:"price_overview,omitempty"`
}

// Price is the store's price block for a paid title.
type Price struct {
	Currency        string `json:"currency"`
	Initial         int64  `json:"initial"`          // In the currency's smallest unit.
	Final           int64  `json:"final"`            // After any active discount.
	DiscountPercent int    `json:"discount_percent"`
}
