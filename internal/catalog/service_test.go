package catalog

import (
	"context"
	"testing"

	"github.com/velora-motors/storefront-backend/pkg/config"
	"github.com/velora-motors/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/pagination"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(config.CatalogConfig{CarouselIntervalMS: 5000})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestListVehiclesDefaultSortIsPriceAscending(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	result, err := svc.ListVehicles(context.Background(), ListVehiclesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 6 {
		t.Fatalf("expected 6 listings, got %d", result.Total)
	}
	for i := 1; i < len(result.Items); i++ {
		if result.Items[i-1].BasePrice > result.Items[i].BasePrice {
			t.Fatalf("not sorted by price ascending: %v then %v", result.Items[i-1].BasePrice, result.Items[i].BasePrice)
		}
	}
	if result.Items[0].ID != "corsa-se" {
		t.Fatalf("expected cheapest first, got %s", result.Items[0].ID)
	}
}

func TestListVehiclesQueryIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	result, err := svc.ListVehicles(context.Background(), ListVehiclesInput{Query: "  gRaNd "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || result.Items[0].ID != "grandland-x" {
		t.Fatalf("expected only grandland-x, got %+v", result.Items)
	}
}

func TestListVehiclesPriceRangeFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	min, max := int64(30000), int64(50000)
	result, err := svc.ListVehicles(context.Background(), ListVehiclesInput{PriceMin: &min, PriceMax: &max})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 3 {
		t.Fatalf("expected 3 listings in range, got %d", result.Total)
	}
	for _, v := range result.Items {
		if v.BasePrice < min || v.BasePrice > max {
			t.Fatalf("listing %s out of range: %d", v.ID, v.BasePrice)
		}
	}
}

func TestListVehiclesInvertedPriceRange(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	min, max := int64(50000), int64(30000)
	_, err := svc.ListVehicles(context.Background(), ListVehiclesInput{PriceMin: &min, PriceMax: &max})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListVehiclesCategoryFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	category := enums.VehicleCategorySUV
	result, err := svc.ListVehicles(context.Background(), ListVehiclesInput{Category: &category})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || result.Items[0].ID != "grandland-x" {
		t.Fatalf("expected only the SUV, got %+v", result.Items)
	}
}

func TestListVehiclesPerformanceSort(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	result, err := svc.ListVehicles(context.Background(), ListVehiclesInput{Sort: enums.SortPerformance})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Items[0].ID != "omega-gt" {
		t.Fatalf("expected quickest car first, got %s", result.Items[0].ID)
	}
	for i := 1; i < len(result.Items); i++ {
		if result.Items[i-1].Specs.AccelerationSec > result.Items[i].Specs.AccelerationSec {
			t.Fatal("not sorted by acceleration ascending")
		}
	}
}

func TestListVehiclesPagination(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	result, err := svc.ListVehicles(context.Background(), ListVehiclesInput{
		Pagination: pagination.Params{Page: 2, Limit: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Items) != 2 {
		t.Fatalf("expected page of 2, got %d", len(result.Items))
	}
	if result.Total != 6 || result.Page != 2 || result.Limit != 2 {
		t.Fatalf("unexpected paging metadata: %+v", result)
	}
	// price ascending: page 2 holds the 3rd and 4th cheapest
	if result.Items[0].ID != "astra-electric" || result.Items[1].ID != "grandland-x" {
		t.Fatalf("unexpected page contents: %s, %s", result.Items[0].ID, result.Items[1].ID)
	}
}

func TestGetVehicle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	vehicle, err := svc.GetVehicle(context.Background(), "insignia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicle.BasePrice != 65000 || vehicle.Category != enums.VehicleCategoryExecutive {
		t.Fatalf("unexpected listing: %+v", vehicle)
	}

	_, err = svc.GetVehicle(context.Background(), "delorean")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFeaturedCarriesRotationInterval(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	result, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Slides) != 4 {
		t.Fatalf("expected 4 slides, got %d", len(result.Slides))
	}
	if result.RotationIntervalMS != 5000 {
		t.Fatalf("expected 5000ms interval, got %d", result.RotationIntervalMS)
	}
}

func TestOptionsListsColorsAndInteriors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	result, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Colors) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(result.Colors))
	}
	if len(result.Interiors) != 3 {
		t.Fatalf("expected 3 interiors, got %d", len(result.Interiors))
	}

	deltas := map[string]int64{}
	for _, i := range result.Interiors {
		deltas[i.Name] = i.PriceDelta
	}
	if deltas["Standard Fabric"] != 0 || deltas["Premium Leather"] != 3000 || deltas["Luxury Leather Plus"] != 6000 {
		t.Fatalf("unexpected interior deltas: %v", deltas)
	}
}

func TestOptionLookups(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	if _, ok := svc.ColorByName("Electric Blue"); !ok {
		t.Fatal("expected Electric Blue to resolve")
	}
	if _, ok := svc.ColorByName("Neon Green"); ok {
		t.Fatal("unexpected color resolved")
	}
	if interior, ok := svc.InteriorByName("Luxury Leather Plus"); !ok || interior.PriceDelta != 6000 {
		t.Fatalf("unexpected interior lookup: %+v", interior)
	}
}
