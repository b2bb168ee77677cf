package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Predicate is the store-query form of a FilterSelection: SQL conditions plus
// bind arguments, ANDed together. Building one never touches the store, so
// translation is unit-testable on its own.
type Predicate struct {
	conditions []string
	args       []interface{}
}

// BuildPredicate translates a normalized selection into a single consistent
// query predicate: per attribute, membership in the selected value set (OR
// within an attribute via IN); AND across distinct attributes; and the price
// range evaluated against the effective price. Attribute order is sorted so
// the generated SQL is deterministic.
func BuildPredicate(selection FilterSelection) Predicate {
	pred := Predicate{}

	names := make([]string, 0, len(selection.Attributes))
	for name := range selection.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := selection.Attributes[name]
		placeholders := make([]string, len(values))
		pred.args = append(pred.args, name)
		for i, value := range values {
			placeholders[i] = "?"
			pred.args = append(pred.args, value)
		}
		pred.conditions = append(pred.conditions,
			fmt.Sprintf("p.attributes->>? IN (%s)", strings.Join(placeholders, ",")))
	}

	if selection.Price != nil {
		// A product without a sale price must still be evaluated on its base
		// price for BOTH bounds; comparing a single column would silently
		// exclude every product where sale_price is NULL.
		pred.conditions = append(pred.conditions,
			"(p.sale_price >= ? OR p.price >= ?)",
			"(p.sale_price <= ? OR p.price <= ?)")
		pred.args = append(pred.args,
			selection.Price.Min, selection.Price.Min,
			selection.Price.Max, selection.Price.Max)
	}

	return pred
}

// Where returns the combined SQL clause and its bind arguments. An empty
// predicate yields "TRUE" so it composes into a WHERE without special cases.
func (p Predicate) Where() (string, []interface{}) {
	if len(p.conditions) == 0 {
		return "TRUE", nil
	}
	return strings.Join(p.conditions, " AND "), p.args
}
