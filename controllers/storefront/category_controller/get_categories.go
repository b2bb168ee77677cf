package category_controller

import (
	"net/http"

	"github.com/Aurelle-Shop/aurelle-store-backend/config"
	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all active categories with product counts, as a hierarchy
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeoutFrom(c.Request.Context())
	defer cancel()

	// Counts are per direct assignment; subtree totals are the browse
	// endpoint's concern.
	query := `
		SELECT
			c.id::text AS id,
			c.name,
			c.description,
			c.parent_id::text AS parent_id,
			COUNT(DISTINCT p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.status = 'Active'
		WHERE c.status = 'Active'
		GROUP BY c.id, c.name, c.description, c.parent_id, c.sort_order
		ORDER BY c.sort_order ASC, c.name ASC
	`

	var allCategories []models.StorefrontCategory
	if err := config.StoreGorm.WithContext(ctx).Raw(query).Scan(&allCategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	// Build hierarchy, keeping query order at every level
	parentCategories := buildCategoryHierarchy(allCategories)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", parentCategories))
}
