package category_controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Aurelle-Shop/aurelle-store-backend/catalog"
	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parsePage reads the page query parameter. Absent means page 1; anything
// present but non-numeric or below 1 is rejected rather than coerced.
func parsePage(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: page %q", catalog.ErrInvalidArgument, raw)
	}
	return page, nil
}

// categoryView maps a catalog category to its storefront representation.
func categoryView(cat models.Category) models.StorefrontCategory {
	var parentID *string
	if cat.ParentID != nil {
		id := cat.ParentID.String()
		parentID = &id
	}
	return models.StorefrontCategory{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		Description: cat.Description,
		ParentID:    parentID,
	}
}

func categoryViews(cats []models.Category) []models.StorefrontCategory {
	views := make([]models.StorefrontCategory, 0, len(cats))
	for _, cat := range cats {
		views = append(views, categoryView(cat))
	}
	return views
}

// buildCategoryHierarchy nests flat category rows (in query order) under
// their parents. Children are attached deepest-first so every subtree is
// complete before it is copied into its parent; attaching top-down would
// snapshot parents before their own children arrive and silently drop
// level-3+ categories. Rows whose parent is absent from the listing are
// dropped with it.
func buildCategoryHierarchy(flat []models.StorefrontCategory) []*models.StorefrontCategory {
	childrenByParent := make(map[string][]*models.StorefrontCategory)
	topLevel := make([]*models.StorefrontCategory, 0)

	for i := range flat {
		cat := &flat[i]
		if cat.ParentID == nil {
			topLevel = append(topLevel, cat)
			continue
		}
		childrenByParent[*cat.ParentID] = append(childrenByParent[*cat.ParentID], cat)
	}

	var attach func(cat *models.StorefrontCategory)
	attach = func(cat *models.StorefrontCategory) {
		for _, child := range childrenByParent[cat.ID] {
			attach(child)
			cat.Subcategories = append(cat.Subcategories, *child)
		}
	}
	for _, cat := range topLevel {
		attach(cat)
	}

	return topLevel
}

// respondCatalogError translates the catalog error taxonomy to HTTP statuses.
func respondCatalogError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, entity+" not found"))
	case errors.Is(err, catalog.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, catalog.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Store temporarily unavailable"))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch "+entity))
	}
}
