package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/velora-motors/storefront-backend/pkg/config"
	"github.com/velora-motors/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/pagination"
)

// Service exposes catalog browsing and customization reference data.
type Service interface {
	ListVehicles(ctx context.Context, input ListVehiclesInput) (*ListVehiclesResult, error)
	GetVehicle(ctx context.Context, id string) (*Vehicle, error)
	Featured(ctx context.Context) (*FeaturedResult, error)
	Options(ctx context.Context) (*OptionsResult, error)
	ColorByName(name string) (*ColorOption, bool)
	InteriorByName(name string) (*InteriorOption, bool)
}

type service struct {
	cfg       config.CatalogConfig
	byID      map[string]Vehicle
	colors    map[string]ColorOption
	interiors map[string]InteriorOption
}

// NewService builds the catalog service from the compiled-in tables.
func NewService(cfg config.CatalogConfig) (Service, error) {
	if cfg.CarouselIntervalMS <= 0 {
		return nil, fmt.Errorf("carousel interval must be positive")
	}

	byID := make(map[string]Vehicle, len(vehicles))
	for _, v := range vehicles {
		if _, exists := byID[v.ID]; exists {
			return nil, fmt.Errorf("duplicate vehicle id %q", v.ID)
		}
		byID[v.ID] = v
	}

	colors := make(map[string]ColorOption, len(exteriorColors))
	for _, c := range exteriorColors {
		colors[c.Name] = c
	}
	interiors := make(map[string]InteriorOption, len(interiorPackages))
	for _, i := range interiorPackages {
		interiors[i.Name] = i
	}

	return &service{
		cfg:       cfg,
		byID:      byID,
		colors:    colors,
		interiors: interiors,
	}, nil
}

// ListVehicles filters, sorts, and paginates the listing table in memory.
func (s *service) ListVehicles(_ context.Context, input ListVehiclesInput) (*ListVehiclesResult, error) {
	if input.Sort != "" && !input.Sort.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid sort option")
	}
	if input.Category != nil && !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid vehicle category")
	}
	if input.PriceMin != nil && input.PriceMax != nil && *input.PriceMin > *input.PriceMax {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_min exceeds price_max")
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))

	filtered := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if query != "" && !strings.Contains(strings.ToLower(v.Name), query) {
			continue
		}
		if input.PriceMin != nil && v.BasePrice < *input.PriceMin {
			continue
		}
		if input.PriceMax != nil && v.BasePrice > *input.PriceMax {
			continue
		}
		if input.Category != nil && v.Category != *input.Category {
			continue
		}
		filtered = append(filtered, v)
	}

	sortVehicles(filtered, input.Sort)

	total := len(filtered)
	start, end := pagination.Window(input.Pagination, total)

	return &ListVehiclesResult{
		Items: filtered[start:end],
		Total: total,
		Page:  pagination.NormalizePage(input.Pagination.Page),
		Limit: pagination.NormalizeLimit(input.Pagination.Limit),
	}, nil
}

// GetVehicle returns a single listing by id.
func (s *service) GetVehicle(_ context.Context, id string) (*Vehicle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle id is required")
	}
	v, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}
	return &v, nil
}

// Featured returns the landing carousel slides. Rotation is driven by the
// client on the returned interval.
func (s *service) Featured(_ context.Context) (*FeaturedResult, error) {
	slides := make([]FeaturedSlide, len(featuredSlides))
	copy(slides, featuredSlides)
	return &FeaturedResult{
		Slides:             slides,
		RotationIntervalMS: s.cfg.CarouselIntervalMS,
	}, nil
}

// Options returns the exterior colors and interior packages. The lists are
// shared by every listing.
func (s *service) Options(_ context.Context) (*OptionsResult, error) {
	colors := make([]ColorOption, len(exteriorColors))
	copy(colors, exteriorColors)
	interiors := make([]InteriorOption, len(interiorPackages))
	copy(interiors, interiorPackages)
	return &OptionsResult{Colors: colors, Interiors: interiors}, nil
}

// ColorByName resolves a cosmetic color choice.
func (s *service) ColorByName(name string) (*ColorOption, bool) {
	c, ok := s.colors[name]
	if !ok {
		return nil, false
	}
	return &c, true
}

// InteriorByName resolves an interior package and its price delta.
func (s *service) InteriorByName(name string) (*InteriorOption, bool) {
	i, ok := s.interiors[name]
	if !ok {
		return nil, false
	}
	return &i, true
}

func sortVehicles(items []Vehicle, by enums.SortOption) {
	switch by {
	case enums.SortPriceHighLow:
		sort.SliceStable(items, func(a, b int) bool { return items[a].BasePrice > items[b].BasePrice })
	case enums.SortPerformance:
		sort.SliceStable(items, func(a, b int) bool { return items[a].Specs.AccelerationSec < items[b].Specs.AccelerationSec })
	case enums.SortName:
		sort.SliceStable(items, func(a, b int) bool { return items[a].Name < items[b].Name })
	default:
		sort.SliceStable(items, func(a, b int) bool { return items[a].BasePrice < items[b].BasePrice })
	}
}
