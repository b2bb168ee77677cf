package catalog

import (
	"context"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusActive is the only product status visible to the storefront.
const StatusActive = "Active"

// LoadUniverseIDs returns the ids of every active product directly assigned
// to any of categoryIDs, newest first. One set-membership query regardless of
// how wide the category subtree is.
func LoadUniverseIDs(ctx context.Context, db *gorm.DB, categoryIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	if len(categoryIDs) == 0 {
		return ids, nil
	}

	err := db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id IN ? AND status = ?", categoryIDs, StatusActive).
		Order("id DESC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, storeError("load universe ids", err)
	}
	return ids, nil
}

// LoadUniverseProducts loads the full records of the unfiltered universe,
// newest first. Facet derivation and price bounds read from these.
func LoadUniverseProducts(ctx context.Context, db *gorm.DB, categoryIDs []uuid.UUID) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if len(categoryIDs) == 0 {
		return products, nil
	}

	err := db.WithContext(ctx).
		Where("category_id IN ? AND status = ?", categoryIDs, StatusActive).
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, storeError("load universe products", err)
	}
	return products, nil
}
