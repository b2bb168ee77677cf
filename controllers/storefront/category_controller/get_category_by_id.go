package category_controller

import (
	"net/http"

	"github.com/Aurelle-Shop/aurelle-store-backend/config"
	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCategoryByID godoc
// @Summary Get category details
// @Description Get single category with ordered subcategories and product count
// @Tags store
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeoutFrom(c.Request.Context())
	defer cancel()

	query := `
		SELECT
			c.id::text AS id,
			c.name,
			c.description,
			c.parent_id::text AS parent_id,
			COUNT(DISTINCT p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.status = 'Active'
		WHERE c.id = ? AND c.status = 'Active'
		GROUP BY c.id, c.name, c.description, c.parent_id
	`

	var category models.StorefrontCategory
	if err := config.StoreGorm.WithContext(ctx).Raw(query, categoryID).Scan(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}
	if category.ID == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	// Get subcategories in display order
	subQuery := `
		SELECT
			c.id::text AS id,
			c.name,
			c.description,
			c.parent_id::text AS parent_id,
			COUNT(DISTINCT p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.status = 'Active'
		WHERE c.parent_id = ? AND c.status = 'Active'
		GROUP BY c.id, c.name, c.description, c.parent_id, c.sort_order
		ORDER BY c.sort_order ASC, c.name ASC
	`

	var subcategories []models.StorefrontCategory
	if err := config.StoreGorm.WithContext(ctx).Raw(subQuery, categoryID).Scan(&subcategories).Error; err == nil {
		category.Subcategories = subcategories
	} else {
		category.Subcategories = []models.StorefrontCategory{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", category))
}
