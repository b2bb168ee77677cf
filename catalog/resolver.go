package catalog

import (
	"context"
	"errors"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolvedCategory is the result of resolving a category subtree: the
// category itself, its direct children in display order, every category id
// reachable through the subtree (the requested id included), and the
// effective filterable attribute names (root-declared globals first, then the
// category's own, deduplicated).
type ResolvedCategory struct {
	Category      models.Category
	Children      []models.Category
	DescendantIDs []uuid.UUID
	Filterable    []string
}

// ResolveCategory loads categoryID and walks the child graph level by level
// until a level has no further children. Depth is unbounded; each level is a
// single parent_id IN (...) query. Pure read, no side effects.
//
// Only active categories take part: an inactive category resolves as not
// found, and an inactive branch is pruned together with everything beneath it,
// matching what the category listing shows.
//
// rootID designates the top-level category whose declared attributes apply
// storewide; uuid.Nil skips the global lookup.
func ResolveCategory(ctx context.Context, db *gorm.DB, rootID, categoryID uuid.UUID) (*ResolvedCategory, error) {
	var category models.Category
	if err := db.WithContext(ctx).First(&category, "id = ? AND status = ?", categoryID, StatusActive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeError("load category", err)
	}

	filterable, err := effectiveFilterable(ctx, db, rootID, &category)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedCategory{
		Category:      category,
		Children:      []models.Category{},
		DescendantIDs: []uuid.UUID{categoryID},
		Filterable:    filterable,
	}

	seen := map[uuid.UUID]bool{categoryID: true}
	frontier := []uuid.UUID{categoryID}

	for level := 0; len(frontier) > 0; level++ {
		var children []models.Category
		err := db.WithContext(ctx).
			Where("parent_id IN ? AND status = ?", frontier, StatusActive).
			Order("sort_order ASC, id ASC").
			Find(&children).Error
		if err != nil {
			return nil, storeError("load category children", err)
		}

		frontier = frontier[:0]
		for _, child := range children {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			resolved.DescendantIDs = append(resolved.DescendantIDs, child.ID)
			frontier = append(frontier, child.ID)
		}
		if level == 0 {
			resolved.Children = children
		}
	}

	return resolved, nil
}

// effectiveFilterable unions the root category's declared attributes with the
// category's own, keeping declaration order and dropping duplicates. A
// missing or unset root simply contributes nothing; any other failure of the
// root lookup is a store error, not an empty union.
func effectiveFilterable(ctx context.Context, db *gorm.DB, rootID uuid.UUID, category *models.Category) ([]string, error) {
	declared := make([]string, 0, len(category.Filterable))
	seen := make(map[string]bool)

	appendAttrs := func(attrs models.AttributeNameList) {
		for _, name := range attrs {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			declared = append(declared, name)
		}
	}

	if rootID != uuid.Nil && rootID != category.ID {
		var root models.Category
		err := db.WithContext(ctx).First(&root, "id = ? AND status = ?", rootID, StatusActive).Error
		switch {
		case err == nil:
			appendAttrs(root.Filterable)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no root, no globals
		default:
			return nil, storeError("load root category", err)
		}
	}
	appendAttrs(category.Filterable)

	return declared, nil
}
