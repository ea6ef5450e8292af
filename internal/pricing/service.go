package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/velora-motors/storefront-backend/internal/catalog"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
)

const (
	// MinFinancingMonths and MaxFinancingMonths bound the financing term.
	MinFinancingMonths = 24
	MaxFinancingMonths = 84
)

type optionLookup interface {
	GetVehicle(ctx context.Context, id string) (*catalog.Vehicle, error)
	ColorByName(name string) (*catalog.ColorOption, bool)
	InteriorByName(name string) (*catalog.InteriorOption, bool)
}

// Service derives purchase prices from a base vehicle and customization.
type Service interface {
	Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error)
}

type service struct {
	catalog optionLookup
}

// NewService builds the pricing service on top of the catalog.
func NewService(catalogSvc optionLookup) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	return &service{catalog: catalogSvc}, nil
}

// QuoteInput is one customization pricing request.
type QuoteInput struct {
	VehicleID       string `json:"vehicle_id" validate:"required"`
	Color           string `json:"color" validate:"required"`
	Interior        string `json:"interior" validate:"required"`
	FinancingMonths int    `json:"financing_months" validate:"required,min=24,max=84"`
}

// QuoteResult is the derived price breakdown for a configured vehicle.
type QuoteResult struct {
	VehicleID       string  `json:"vehicle_id"`
	VehicleName     string  `json:"vehicle_name"`
	BasePrice       int64   `json:"base_price"`
	Color           string  `json:"color"`
	Interior        string  `json:"interior"`
	InteriorDelta   int64   `json:"interior_delta"`
	TotalPrice      int64   `json:"total_price"`
	FinancingMonths int     `json:"financing_months"`
	MonthlyPayment  float64 `json:"monthly_payment"`
}

// Quote computes total = base price + interior delta (color is cosmetic)
// and a flat amortization monthly estimate over the financing term.
func (s *service) Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error) {
	if input.FinancingMonths < MinFinancingMonths || input.FinancingMonths > MaxFinancingMonths {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "financing term out of range").
			WithDetails(map[string]string{"financing_months": fmt.Sprintf("must be between %d and %d", MinFinancingMonths, MaxFinancingMonths)})
	}

	vehicle, err := s.catalog.GetVehicle(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}

	color, ok := s.catalog.ColorByName(strings.TrimSpace(input.Color))
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown exterior color").
			WithDetails(map[string]string{"color": "not an offered color"})
	}

	interior, ok := s.catalog.InteriorByName(strings.TrimSpace(input.Interior))
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown interior package").
			WithDetails(map[string]string{"interior": "not an offered interior package"})
	}

	total := vehicle.BasePrice + interior.PriceDelta
	monthly := decimal.NewFromInt(total).
		DivRound(decimal.NewFromInt(int64(input.FinancingMonths)), 2)

	return &QuoteResult{
		VehicleID:       vehicle.ID,
		VehicleName:     vehicle.Name,
		BasePrice:       vehicle.BasePrice,
		Color:           color.Name,
		Interior:        interior.Name,
		InteriorDelta:   interior.PriceDelta,
		TotalPrice:      total,
		FinancingMonths: input.FinancingMonths,
		MonthlyPayment:  monthly.InexactFloat64(),
	}, nil
}
