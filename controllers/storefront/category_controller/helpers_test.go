package category_controller

import (
	"testing"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parentRef(id string) *string { return &id }

func TestBuildCategoryHierarchyThreeLevels(t *testing.T) {
	flat := []models.StorefrontCategory{
		{ID: "root", Name: "Shop All"},
		{ID: "clothing", Name: "Clothing", ParentID: parentRef("root")},
		{ID: "home", Name: "Home", ParentID: parentRef("root")},
		{ID: "tshirts", Name: "T-Shirts", ParentID: parentRef("clothing")},
		{ID: "hoodies", Name: "Hoodies", ParentID: parentRef("clothing")},
	}

	tree := buildCategoryHierarchy(flat)

	require.Len(t, tree, 1)
	root := tree[0]
	require.Len(t, root.Subcategories, 2)

	clothing := root.Subcategories[0]
	assert.Equal(t, "Clothing", clothing.Name)
	// the third level must survive the copy of its parent into the root
	require.Len(t, clothing.Subcategories, 2)
	assert.Equal(t, "T-Shirts", clothing.Subcategories[0].Name)
	assert.Equal(t, "Hoodies", clothing.Subcategories[1].Name)

	assert.Equal(t, "Home", root.Subcategories[1].Name)
	assert.Empty(t, root.Subcategories[1].Subcategories)
}

func TestBuildCategoryHierarchyRowOrderIndependent(t *testing.T) {
	// global sort_order can interleave levels arbitrarily, so a descendant
	// may precede its ancestors in the listing
	flat := []models.StorefrontCategory{
		{ID: "tees", Name: "Graphic Tees", ParentID: parentRef("tshirts")},
		{ID: "tshirts", Name: "T-Shirts", ParentID: parentRef("clothing")},
		{ID: "clothing", Name: "Clothing", ParentID: parentRef("root")},
		{ID: "root", Name: "Shop All"},
	}

	tree := buildCategoryHierarchy(flat)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Subcategories, 1)
	clothing := tree[0].Subcategories[0]
	require.Len(t, clothing.Subcategories, 1)
	require.Len(t, clothing.Subcategories[0].Subcategories, 1)
	assert.Equal(t, "Graphic Tees", clothing.Subcategories[0].Subcategories[0].Name)
}

func TestBuildCategoryHierarchyDropsOrphans(t *testing.T) {
	flat := []models.StorefrontCategory{
		{ID: "root", Name: "Shop All"},
		{ID: "stray", Name: "Stray", ParentID: parentRef("missing")},
	}

	tree := buildCategoryHierarchy(flat)

	require.Len(t, tree, 1)
	assert.Equal(t, "Shop All", tree[0].Name)
	assert.Empty(t, tree[0].Subcategories)
}
