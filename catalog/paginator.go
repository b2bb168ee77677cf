package catalog

import (
	"context"
	"fmt"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FetchPage applies the predicate to the category-scoped universe and returns
// the accumulated page: page n holds the first n*pageSize matches, newest
// first ("load more" semantics, not independent offset windows). Ordering is
// by descending id, which for UUIDv7 ids is creation order.
func FetchPage(ctx context.Context, db *gorm.DB, universeIDs []uuid.UUID, pred Predicate, pageSize, page int) ([]models.StorefrontProduct, error) {
	if err := validatePaging(pageSize, page); err != nil {
		return nil, err
	}

	products := make([]models.StorefrontProduct, 0)
	if len(universeIDs) == 0 {
		return products, nil
	}

	where, args := pred.Where()
	query := fmt.Sprintf(`
		SELECT
			p.id::text AS id,
			p.name,
			p.price,
			p.sale_price,
			COALESCE(p.media->'primary'->>'url', '') AS image
		FROM products p
		WHERE p.id IN ? AND %s
		ORDER BY p.id DESC
		LIMIT ?
	`, where)

	queryArgs := make([]interface{}, 0, len(args)+2)
	queryArgs = append(queryArgs, universeIDs)
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, pageSize*page)

	if err := db.WithContext(ctx).Raw(query, queryArgs...).Scan(&products).Error; err != nil {
		return nil, storeError("fetch page", err)
	}
	return products, nil
}

// CountMatches returns the total matches for the predicate within the
// universe, ignoring any page limit. The storefront compares it against the
// accumulated page length to decide whether to show "load more".
func CountMatches(ctx context.Context, db *gorm.DB, universeIDs []uuid.UUID, pred Predicate) (int, error) {
	if len(universeIDs) == 0 {
		return 0, nil
	}

	where, args := pred.Where()
	query := fmt.Sprintf(`SELECT COUNT(*) FROM products p WHERE p.id IN ? AND %s`, where)

	queryArgs := make([]interface{}, 0, len(args)+1)
	queryArgs = append(queryArgs, universeIDs)
	queryArgs = append(queryArgs, args...)

	var total int64
	if err := db.WithContext(ctx).Raw(query, queryArgs...).Scan(&total).Error; err != nil {
		return 0, storeError("count matches", err)
	}
	return int(total), nil
}

func validatePaging(pageSize, page int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidArgument, page)
	}
	if pageSize <= 0 {
		return fmt.Errorf("%w: page size must be > 0, got %d", ErrInvalidArgument, pageSize)
	}
	return nil
}
