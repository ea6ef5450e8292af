package catalog

import (
	"github.com/velora-motors/storefront-backend/pkg/enums"
	"github.com/velora-motors/storefront-backend/pkg/pagination"
)

// SpecBlock is the fixed specification sheet attached to every listing.
type SpecBlock struct {
	RangeKM         int     `json:"range_km"`
	PowerKW         int     `json:"power_kw"`
	AccelerationSec float64 `json:"acceleration_sec"`
	Seats           int     `json:"seats"`
	Transmission    string  `json:"transmission"`
}

// Vehicle is one catalog listing. Price and specs are immutable reference
// data; nothing downstream ever mutates a Vehicle.
type Vehicle struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	BasePrice   int64                 `json:"base_price"`
	Year        int                   `json:"year"`
	Image       string                `json:"image"`
	Category    enums.VehicleCategory `json:"category"`
	Specs       SpecBlock             `json:"specs"`
	Description string                `json:"description"`
}

// ColorOption is a cosmetic exterior choice. It never affects price.
type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// InteriorOption is an interior package with its price delta.
type InteriorOption struct {
	Name       string `json:"name"`
	PriceDelta int64  `json:"price_delta"`
}

// FeaturedSlide is one entry of the landing carousel.
type FeaturedSlide struct {
	VehicleID string `json:"vehicle_id"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Badge     string `json:"badge"`
	Headline  string `json:"headline"`
}

// ListVehiclesInput captures the filter/sort/pagination knobs for browsing.
type ListVehiclesInput struct {
	Query      string
	PriceMin   *int64
	PriceMax   *int64
	Category   *enums.VehicleCategory
	Sort       enums.SortOption
	Pagination pagination.Params
}

// ListVehiclesResult is one page of listings plus paging metadata.
type ListVehiclesResult struct {
	Items []Vehicle `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// FeaturedResult carries the carousel slides and the rotation interval the
// client should use between automatic advances.
type FeaturedResult struct {
	Slides             []FeaturedSlide `json:"slides"`
	RotationIntervalMS int             `json:"rotation_interval_ms"`
}

// OptionsResult lists the customization choices shared by every listing.
type OptionsResult struct {
	Colors    []ColorOption    `json:"colors"`
	Interiors []InteriorOption `json:"interiors"`
}
