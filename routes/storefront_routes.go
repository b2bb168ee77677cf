package routes

import (
	store_category "github.com/Aurelle-Shop/aurelle-store-backend/controllers/storefront/category_controller"
	store_product "github.com/Aurelle-Shop/aurelle-store-backend/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)             // List all, as a hierarchy
		categories.GET("/:id", store_category.GetCategoryByID)       // Single category
		categories.GET("/:id/browse", store_category.BrowseCategory) // Faceted browse
	}

	// Product routes
	products := store.Group("/products")
	{
		products.GET("/:id", store_product.GetProductByID) // Single product
	}
}
