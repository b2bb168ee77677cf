package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQueryParam(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single scalar", "Red", []string{"Red"}},
		{"comma joined", "Red,Blue,Green", []string{"Red", "Blue", "Green"}},
		{"whitespace trimmed", " Red , Blue ", []string{"Red", "Blue"}},
		{"duplicates keep first position", "Red,Blue,Red", []string{"Red", "Blue"}},
		{"empty parts dropped", "Red,,Blue,", []string{"Red", "Blue"}},
		{"empty string", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromQueryParam(tt.raw))
		})
	}
}

func TestQueryParamRoundTrip(t *testing.T) {
	values := []string{"Red", "Blue", "Forest Green"}
	assert.Equal(t, values, FromQueryParam(ToQueryParam(values)))
}

func TestParseSelection(t *testing.T) {
	declared := []string{"color", "size"}

	selection := ParseSelection(map[string]string{
		"color":  "Red,Blue",
		"size":   "M",
		"legacy": "whatever", // stale UI facet, silently dropped
		"brand":  "",
	}, declared)

	assert.Equal(t, map[string][]string{
		"color": {"Red", "Blue"},
		"size":  {"M"},
	}, selection.Attributes)
	assert.Nil(t, selection.Price)
	assert.False(t, selection.IsZero())
}

func TestParseSelectionEmpty(t *testing.T) {
	selection := ParseSelection(nil, []string{"color"})
	assert.True(t, selection.IsZero())
}

func TestParsePriceRange(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		bounds, err := ParsePriceRange("10-100")
		require.NoError(t, err)
		require.NotNil(t, bounds)
		assert.Equal(t, 10.0, bounds.Min)
		assert.Equal(t, 100.0, bounds.Max)
	})

	t.Run("missing min defaults to zero", func(t *testing.T) {
		bounds, err := ParsePriceRange("-100")
		require.NoError(t, err)
		require.NotNil(t, bounds)
		assert.Equal(t, 0.0, bounds.Min)
		assert.Equal(t, 100.0, bounds.Max)
	})

	t.Run("missing max is unbounded above", func(t *testing.T) {
		bounds, err := ParsePriceRange("10-")
		require.NoError(t, err)
		require.NotNil(t, bounds)
		assert.Equal(t, 10.0, bounds.Min)
		assert.Equal(t, UnboundedMaxPrice, bounds.Max)
	})

	t.Run("empty string means no range", func(t *testing.T) {
		bounds, err := ParsePriceRange("")
		require.NoError(t, err)
		assert.Nil(t, bounds)
	})

	t.Run("decimals", func(t *testing.T) {
		bounds, err := ParsePriceRange("9.99-19.95")
		require.NoError(t, err)
		require.NotNil(t, bounds)
		assert.Equal(t, 9.99, bounds.Min)
		assert.Equal(t, 19.95, bounds.Max)
	})

	malformed := []string{"abc-100", "10-xyz", "100", "10-20-30", "100-10"}
	for _, raw := range malformed {
		t.Run("malformed "+raw, func(t *testing.T) {
			bounds, err := ParsePriceRange(raw)
			assert.Nil(t, bounds)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestFormatPriceRange(t *testing.T) {
	assert.Equal(t, "", FormatPriceRange(nil))

	bounds, err := ParsePriceRange("10.5-99.99")
	require.NoError(t, err)
	assert.Equal(t, "10.5-99.99", FormatPriceRange(bounds))
}
