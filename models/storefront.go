// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS (customer-facing views)
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontProduct is the thin product card returned by browse listings.
type StorefrontProduct struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"sale_price,omitempty"`
	Image     string   `json:"image"`
}

// StorefrontCategory represents a category in the storefront
type StorefrontCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	ParentID      *string              `json:"parent_id"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}

// BrowseData is the payload of the category browse endpoint: the category,
// its ordered children, the derived facets (split for display), the slider
// bounds encoded as "min-max" (empty when the universe is empty), the
// accumulated product page and the total match count.
type BrowseData struct {
	Category         StorefrontCategory    `json:"category"`
	CategoryChildren []StorefrontCategory  `json:"category_children"`
	Facets           map[string]FacetGroup `json:"facets"`
	PriceRange       string                `json:"price_range,omitempty"`
	Products         []StorefrontProduct   `json:"products"`
	TotalCount       int                   `json:"total_count"`
}
