package catalog

import (
	"testing"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(price float64, salePrice *float64, attrs models.AttributeMap) models.Product {
	return models.Product{Price: price, SalePrice: salePrice, Attributes: attrs}
}

func salePrice(v float64) *float64 {
	return &v
}

func TestDeriveFacets(t *testing.T) {
	universe := []models.Product{
		product(10, nil, models.AttributeMap{"color": "Red", "size": "M"}),
		product(20, nil, models.AttributeMap{"color": "Blue", "size": "M"}),
		product(30, nil, models.AttributeMap{"color": "Red", "material": "Wool"}),
		product(40, nil, models.AttributeMap{"size": "L"}),
		product(50, nil, nil), // no attributes at all
	}

	index := DeriveFacets(universe, []string{"color", "size", "season"})

	// first-seen order, duplicates kept at first position
	assert.Equal(t, []string{"Red", "Blue"}, index["color"])
	assert.Equal(t, []string{"M", "L"}, index["size"])

	// observed but not declared
	assert.NotContains(t, index, "material")
	// declared but never observed: absent, not empty
	assert.NotContains(t, index, "season")
	assert.Len(t, index, 2)
}

func TestDeriveFacetsEveryObservedValueIndexed(t *testing.T) {
	universe := []models.Product{
		product(1, nil, models.AttributeMap{"color": "Red"}),
		product(2, nil, models.AttributeMap{"color": "Green"}),
		product(3, nil, models.AttributeMap{"color": "Blue"}),
	}
	declared := []string{"color"}

	index := DeriveFacets(universe, declared)

	require.Contains(t, index, "color")
	for _, p := range universe {
		assert.Contains(t, index["color"], p.Attributes["color"])
	}
}

func TestSplitFacetValues(t *testing.T) {
	tests := []struct {
		name         string
		length       int
		wantVisible  int
		wantOverflow int
	}{
		{"under limit", 3, 3, 0},
		{"exactly at limit", 10, 10, 0},
		{"over limit", 14, 10, 4},
		{"empty", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]string, tt.length)
			for i := range values {
				values[i] = string(rune('a' + i))
			}

			group := SplitFacetValues(values, FacetVisibleLimit)

			assert.Len(t, group.Visible, tt.wantVisible)
			assert.Len(t, group.Overflow, tt.wantOverflow)
			assert.Equal(t, tt.wantOverflow > 0, group.Collapsed)
			// the split preserves the full sequence
			assert.Equal(t, values[:tt.wantVisible], group.Visible)
			if tt.wantOverflow > 0 {
				assert.Equal(t, values[tt.wantVisible:], group.Overflow)
			}
		})
	}
}

func TestPriceBounds(t *testing.T) {
	t.Run("empty universe has no bounds", func(t *testing.T) {
		assert.Nil(t, PriceBounds(nil))
		assert.Nil(t, PriceBounds([]models.Product{}))
	})

	t.Run("sale price wins over base price", func(t *testing.T) {
		universe := []models.Product{
			product(200, salePrice(40), nil),
			product(50, nil, nil),
			product(120, nil, nil),
		}

		bounds := PriceBounds(universe)

		require.NotNil(t, bounds)
		assert.Equal(t, 40.0, bounds.Min)
		assert.Equal(t, 120.0, bounds.Max)
	})

	t.Run("single product collapses to one point", func(t *testing.T) {
		bounds := PriceBounds([]models.Product{product(99, nil, nil)})

		require.NotNil(t, bounds)
		assert.Equal(t, 99.0, bounds.Min)
		assert.Equal(t, 99.0, bounds.Max)
	})
}
