package enums

import "fmt"

// SortOption orders catalog browse results.
type SortOption string

const (
	SortPriceLowHigh SortOption = "price-low"
	SortPriceHighLow SortOption = "price-high"
	SortPerformance  SortOption = "performance"
	SortName         SortOption = "name"
)

var validSortOptions = []SortOption{
	SortPriceLowHigh,
	SortPriceHighLow,
	SortPerformance,
	SortName,
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts raw input into a SortOption, defaulting to
// price ascending when empty.
func ParseSortOption(value string) (SortOption, error) {
	if value == "" {
		return SortPriceLowHigh, nil
	}
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
