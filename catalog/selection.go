package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Aurelle-Shop/aurelle-store-backend/models"
)

// UnboundedMaxPrice stands in for a missing upper bound. Prices are stored as
// numeric(12,2), so this is effectively "no upper bound" without needing the
// predicate to special-case an open range.
const UnboundedMaxPrice float64 = 99_999_999_999

// FilterSelection is the normalized, per-request filter state: attribute name
// to accepted values (each list non-empty, deduplicated), plus an optional
// inclusive effective-price range. Constructed fresh from caller input on
// every request and never persisted.
type FilterSelection struct {
	Attributes map[string][]string
	Price      *models.PriceRange
}

// IsZero reports whether the selection constrains nothing.
func (s FilterSelection) IsZero() bool {
	return len(s.Attributes) == 0 && s.Price == nil
}

// FromQueryParam decodes the wire form of a multi-valued selection: values
// comma-joined into a single string. A bare scalar is a one-element list.
// Values are trimmed, empties dropped, duplicates removed keeping first
// position.
func FromQueryParam(raw string) []string {
	values := make([]string, 0)
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		value := strings.TrimSpace(part)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}

// ToQueryParam is the inverse of FromQueryParam: comma-join. These two rules
// (comma-joined values, dash-joined range) are the whole composite-encoding
// contract of the browse API.
func ToQueryParam(values []string) string {
	return strings.Join(values, ",")
}

// ParseSelection normalizes raw attribute filters against the category's
// declared filterable set. Attributes not declared are dropped, not errors:
// a stale UI may keep sending facets the catalog no longer declares.
func ParseSelection(raw map[string]string, declared []string) FilterSelection {
	declaredSet := make(map[string]bool, len(declared))
	for _, name := range declared {
		declaredSet[name] = true
	}

	selection := FilterSelection{Attributes: make(map[string][]string)}
	for name, rawValues := range raw {
		if !declaredSet[name] {
			continue
		}
		values := FromQueryParam(rawValues)
		if len(values) == 0 {
			continue
		}
		selection.Attributes[name] = values
	}
	return selection
}

// ParsePriceRange decodes the "min-max" wire form. Either side may be empty:
// a missing min defaults to 0, a missing max to UnboundedMaxPrice. An empty
// string means no range at all. Malformed input fails with ErrInvalidArgument
// rather than being coerced.
func ParsePriceRange(raw string) (*models.PriceRange, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: price range %q is not of the form \"min-max\"", ErrInvalidArgument, raw)
	}

	bounds := models.PriceRange{Min: 0, Max: UnboundedMaxPrice}
	if minStr := strings.TrimSpace(parts[0]); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil || min < 0 {
			return nil, fmt.Errorf("%w: invalid price range minimum %q", ErrInvalidArgument, minStr)
		}
		bounds.Min = min
	}
	if maxStr := strings.TrimSpace(parts[1]); maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil || max < 0 {
			return nil, fmt.Errorf("%w: invalid price range maximum %q", ErrInvalidArgument, maxStr)
		}
		bounds.Max = max
	}
	if bounds.Min > bounds.Max {
		return nil, fmt.Errorf("%w: price range minimum exceeds maximum", ErrInvalidArgument)
	}
	return &bounds, nil
}

// FormatPriceRange encodes bounds back to the "min-max" wire form; nil (no
// bounds derivable) encodes to the empty string.
func FormatPriceRange(bounds *models.PriceRange) string {
	if bounds == nil {
		return ""
	}
	return strconv.FormatFloat(bounds.Min, 'f', -1, 64) + "-" + strconv.FormatFloat(bounds.Max, 'f', -1, 64)
}
