// models/facets.go
package models

// FacetIndex maps an attribute name to the distinct values observed for it
// across a product universe, in first-seen order. Only attributes declared
// filterable AND present on at least one product appear as keys; an attribute
// never maps to an empty list.
type FacetIndex map[string][]string

// FacetGroup is the consumer-facing split of one attribute's values: the
// first values up to the visibility limit, the remainder behind a
// "show more" affordance, and whether that remainder starts collapsed.
type FacetGroup struct {
	Visible   []string `json:"visible"`
	Overflow  []string `json:"overflow,omitempty"`
	Collapsed bool     `json:"collapsed"`
}

// PriceRange represents inclusive effective-price bounds. For derived slider
// bounds an absent range (empty universe) is represented as a nil
// *PriceRange, never a zeroed one.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
