package catalog

import (
	"github.com/Aurelle-Shop/aurelle-store-backend/models"
)

// FacetVisibleLimit is how many values of one facet the storefront shows
// before collapsing the remainder behind "show more".
const FacetVisibleLimit = 10

// DeriveFacets scans the (unfiltered) product universe and collects, per
// declared attribute, the distinct values observed, in first-seen order.
// Attributes no product carries are absent from the index rather than mapped
// to an empty list. Duplicate values keep their first position.
func DeriveFacets(products []models.Product, declared []string) models.FacetIndex {
	declaredSet := make(map[string]bool, len(declared))
	for _, name := range declared {
		declaredSet[name] = true
	}

	index := make(models.FacetIndex)
	recorded := make(map[string]map[string]bool)

	for i := range products {
		for name, value := range products[i].Attributes {
			if !declaredSet[name] || value == "" {
				continue
			}
			if recorded[name] == nil {
				recorded[name] = make(map[string]bool)
			}
			if recorded[name][value] {
				continue
			}
			recorded[name][value] = true
			index[name] = append(index[name], value)
		}
	}

	return index
}

// SplitFacetValues splits one facet's ordered value list into the
// default-visible head and the collapsed overflow tail. Pure presentation
// concern; the FacetIndex keeps the full sequence.
func SplitFacetValues(values []string, limit int) models.FacetGroup {
	if limit < 0 {
		limit = 0
	}
	if len(values) <= limit {
		return models.FacetGroup{Visible: values, Collapsed: false}
	}
	return models.FacetGroup{
		Visible:   values[:limit],
		Overflow:  values[limit:],
		Collapsed: true,
	}
}

// PriceBounds returns the min and max effective price across the universe, or
// nil for an empty universe. Callers must treat nil explicitly instead of
// defaulting the slider to 0.
func PriceBounds(products []models.Product) *models.PriceRange {
	if len(products) == 0 {
		return nil
	}

	bounds := models.PriceRange{
		Min: products[0].EffectivePrice(),
		Max: products[0].EffectivePrice(),
	}
	for i := range products[1:] {
		price := products[i+1].EffectivePrice()
		if price < bounds.Min {
			bounds.Min = price
		}
		if price > bounds.Max {
			bounds.Max = price
		}
	}
	return &bounds
}
