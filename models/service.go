package models

import "strings"

// Service statuses shown in the admin catalog.
const (
	ServicePublished = "Published"
	ServiceDraft     = "Draft"
)

// CurrencyPrefix is prepended to every stored price.
const CurrencyPrefix = "₹"

// Service is a sellable offering listed in the catalog.
type Service struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Price       string `json:"price"`    // Display text, always carries the currency prefix.
	Timeline    string `json:"timeline"` // e.g. "2-3 weeks".
	Status      string `json:"status"`
	Features    string `json:"features"` // Free text, comma separated.
}

// NormalizePrice ensures the stored price carries the currency prefix.
func NormalizePrice(price string) string {
	price = strings.TrimSpace(price)
	if price == "" || strings.HasPrefix(price, CurrencyPrefix) {
		return price
	}
	return CurrencyPrefix + price
}

// DefaultServices returns the seed catalog used when storage is empty.
func DefaultServices() []Service {
	return []Service{
		{
			ID:          1,
			Name:        "Pharmacy Website Design",
			Category:    "Website Design",
			Icon:        "fas fa-globe",
			Description: "Professional website design for pharmacies",
			Price:       "₹25,000",
			Timeline:    "2-3 weeks",
			Status:      ServicePublished,
			Features:    "Responsive Design, SEO Optimized, Fast Loading",
		},
		{
			ID:          2,
			Name:        "Online Medicine Store",
			Category:    "Website Design",
			Icon:        "fas fa-shopping-cart",
			Description: "Complete e-commerce for online medicine sales",
			Price:       "₹45,000",
			Timeline:    "4-5 weeks",
			Status:      ServicePublished,
			Features:    "Product Catalog, Payment Gateway, Order Management",
		},
	}
}
