package enums

import "fmt"

// VehicleCategory tags a catalog listing with its body style tier.
type VehicleCategory string

const (
	VehicleCategorySedan      VehicleCategory = "Sedan"
	VehicleCategorySUV        VehicleCategory = "SUV"
	VehicleCategoryCompactSUV VehicleCategory = "Compact SUV"
	VehicleCategoryExecutive  VehicleCategory = "Executive"
	VehicleCategoryCompact    VehicleCategory = "Compact"
	VehicleCategoryLuxury     VehicleCategory = "Luxury"
)

var validVehicleCategories = []VehicleCategory{
	VehicleCategorySedan,
	VehicleCategorySUV,
	VehicleCategoryCompactSUV,
	VehicleCategoryExecutive,
	VehicleCategoryCompact,
	VehicleCategoryLuxury,
}

// String implements fmt.Stringer.
func (v VehicleCategory) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VehicleCategory.
func (v VehicleCategory) IsValid() bool {
	for _, candidate := range validVehicleCategories {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVehicleCategory converts raw input into a VehicleCategory.
func ParseVehicleCategory(value string) (VehicleCategory, error) {
	for _, candidate := range validVehicleCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vehicle category %q", value)
}
