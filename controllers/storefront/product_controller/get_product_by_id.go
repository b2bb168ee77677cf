package product_controller

import (
	"errors"
	"net/http"

	"github.com/Aurelle-Shop/aurelle-store-backend/config"
	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productDetail is the storefront product page payload.
type productDetail struct {
	models.Product
	EffectivePrice float64 `json:"effective_price"`
}

// GetProductByID godoc
// @Summary Get storefront product details
// @Description Get a single active product with attributes, media and effective price
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeoutFrom(c.Request.Context())
	defer cancel()

	var product models.Product
	err = config.StoreGorm.WithContext(ctx).
		First(&product, "id = ? AND status = ?", productID, "Active").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	detail := productDetail{Product: product, EffectivePrice: product.EffectivePrice()}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
