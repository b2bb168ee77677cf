package catalog

import (
	"context"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// BrowseResult bundles everything one browse request needs: the filtered
// accumulated page, the filtered total count, and the facet index plus price
// bounds derived from the unfiltered category universe.
type BrowseResult struct {
	Facets      models.FacetIndex
	PriceBounds *models.PriceRange
	Products    []models.StorefrontProduct
	TotalCount  int
}

// Browse runs the three informational queries for an already-resolved
// category: filtered page, filtered count, and the unfiltered universe that
// feeds facet derivation and slider bounds. The three are independent, so
// they run concurrently and the request lasts as long as the slowest one;
// cancellation of ctx propagates into every branch. Facets and price bounds
// deliberately reflect the unfiltered universe, so checkboxes and slider
// bounds stay stable while the shopper narrows the selection.
func Browse(ctx context.Context, db *gorm.DB, resolved *ResolvedCategory, selection FilterSelection, pageSize, page int) (*BrowseResult, error) {
	if err := validatePaging(pageSize, page); err != nil {
		return nil, err
	}

	universeIDs, err := LoadUniverseIDs(ctx, db, resolved.DescendantIDs)
	if err != nil {
		return nil, err
	}

	pred := BuildPredicate(selection)
	result := &BrowseResult{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := FetchPage(gctx, db, universeIDs, pred, pageSize, page)
		if err != nil {
			return err
		}
		result.Products = products
		return nil
	})
	g.Go(func() error {
		total, err := CountMatches(gctx, db, universeIDs, pred)
		if err != nil {
			return err
		}
		result.TotalCount = total
		return nil
	})
	g.Go(func() error {
		universe, err := LoadUniverseProducts(gctx, db, resolved.DescendantIDs)
		if err != nil {
			return err
		}
		result.Facets = DeriveFacets(universe, resolved.Filterable)
		result.PriceBounds = PriceBounds(universe)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// SplitFacets applies the display split to every facet in the index.
func SplitFacets(index models.FacetIndex, limit int) map[string]models.FacetGroup {
	groups := make(map[string]models.FacetGroup, len(index))
	for name, values := range index {
		groups[name] = SplitFacetValues(values, limit)
	}
	return groups
}
