package catalog

import (
	"testing"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPredicateEmpty(t *testing.T) {
	where, args := BuildPredicate(FilterSelection{}).Where()

	assert.Equal(t, "TRUE", where)
	assert.Empty(t, args)
}

func TestBuildPredicateAttributes(t *testing.T) {
	selection := FilterSelection{Attributes: map[string][]string{
		"size":  {"M", "L"},
		"color": {"Red"},
	}}

	where, args := BuildPredicate(selection).Where()

	// attributes are sorted, so the clause is deterministic: AND across
	// attributes, IN-membership within one attribute
	assert.Equal(t,
		"p.attributes->>? IN (?) AND p.attributes->>? IN (?,?)",
		where)
	assert.Equal(t, []interface{}{"color", "Red", "size", "M", "L"}, args)
}

func TestBuildPredicatePriceRange(t *testing.T) {
	selection := FilterSelection{Price: &models.PriceRange{Min: 10, Max: 100}}

	where, args := BuildPredicate(selection).Where()

	// both bounds compare sale_price OR price so products without a sale
	// price are evaluated on base price
	assert.Equal(t,
		"(p.sale_price >= ? OR p.price >= ?) AND (p.sale_price <= ? OR p.price <= ?)",
		where)
	assert.Equal(t, []interface{}{10.0, 10.0, 100.0, 100.0}, args)
}

func TestBuildPredicateCombined(t *testing.T) {
	selection := FilterSelection{
		Attributes: map[string][]string{"color": {"Red", "Blue"}},
		Price:      &models.PriceRange{Min: 0, Max: UnboundedMaxPrice},
	}

	where, args := BuildPredicate(selection).Where()

	assert.Equal(t,
		"p.attributes->>? IN (?,?) AND (p.sale_price >= ? OR p.price >= ?) AND (p.sale_price <= ? OR p.price <= ?)",
		where)
	require.Len(t, args, 7)
	assert.Equal(t, "color", args[0])
	assert.Equal(t, UnboundedMaxPrice, args[5])
}
