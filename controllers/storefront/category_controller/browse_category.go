package category_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Aurelle-Shop/aurelle-store-backend/cache"
	"github.com/Aurelle-Shop/aurelle-store-backend/catalog"
	"github.com/Aurelle-Shop/aurelle-store-backend/config"
	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// reserved query keys; every other key names a facet attribute
const (
	pageParam       = "page"
	priceRangeParam = "priceRange"
)

// BrowseCategory godoc
// @Summary Browse a category with facet filters
// @Description Resolve the category subtree, derive facets from the unfiltered universe, and return the filtered, accumulated product page with its total count. Facet selections arrive as one comma-joined query parameter per attribute; the price range as "min-max".
// @Tags store
// @Produce json
// @Param id path string true "Category ID"
// @Param priceRange query string false "Inclusive effective-price range, encoded min-max"
// @Param page query int false "Accumulated page number (page n returns the first n*pageSize matches)" default(1)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /store/categories/{id}/browse [get]
func BrowseCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	page, err := parsePage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid page parameter"))
		return
	}

	priceBounds, err := catalog.ParsePriceRange(c.Query(priceRangeParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid price range, expected \"min-max\""))
		return
	}

	ctx, cancel := config.WithTimeoutFrom(c.Request.Context())
	defer cancel()

	resolved, ok := subtree_cache.Get(categoryID)
	if !ok {
		resolved, err = catalog.ResolveCategory(ctx, config.StoreGorm, config.RootCategoryID(), categoryID)
		if err != nil {
			respondCatalogError(c, err, "Category")
			return
		}
		subtree_cache.Set(categoryID, resolved)
	}

	// One query key per attribute, values comma-joined. Repeated keys are
	// tolerated by joining them back into one list.
	rawSelection := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if key == pageParam || key == priceRangeParam {
			continue
		}
		rawSelection[key] = strings.Join(values, ",")
	}

	selection := catalog.ParseSelection(rawSelection, resolved.Filterable)
	selection.Price = priceBounds
	log.Printf("Browsing category %s: %d attribute filters, price=%v, page=%d",
		categoryID, len(selection.Attributes), priceBounds, page)

	pageSize := config.PageSize()
	result, err := catalog.Browse(ctx, config.StoreGorm, resolved, selection, pageSize, page)
	if err != nil {
		respondCatalogError(c, err, "Products")
		return
	}

	data := models.BrowseData{
		Category:         categoryView(resolved.Category),
		CategoryChildren: categoryViews(resolved.Children),
		Facets:           catalog.SplitFacets(result.Facets, catalog.FacetVisibleLimit),
		PriceRange:       catalog.FormatPriceRange(result.PriceBounds),
		Products:         result.Products,
		TotalCount:       result.TotalCount,
	}

	totalPages := (result.TotalCount + pageSize - 1) / pageSize
	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Category browse fetched successfully",
		data,
		&models.Pagination{
			Page:       page,
			Limit:      pageSize,
			Total:      result.TotalCount,
			TotalPages: totalPages,
		},
	))
}
