package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/velora-motors/storefront-backend/internal/cart"
	"github.com/velora-motors/storefront-backend/pkg/checkout"
	"github.com/velora-motors/storefront-backend/pkg/config"
	"github.com/velora-motors/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/logger"
)

type cartAccess interface {
	GetCart(ctx context.Context, sessionID string) (*cart.View, error)
	Clear(ctx context.Context, sessionID string) error
}

// Service drives the shipping -> payment -> complete checkout flow.
type Service interface {
	Status(ctx context.Context, sessionID string) (*StatusResult, error)
	SubmitShipping(ctx context.Context, sessionID string, form checkout.ShippingForm) (*StatusResult, error)
	SubmitPayment(ctx context.Context, sessionID string, form checkout.PaymentForm) (*Confirmation, error)
}

type service struct {
	states StateStore
	carts  cartAccess
	cfg    config.CheckoutConfig
	logg   *logger.Logger
}

// NewService builds the checkout service.
func NewService(states StateStore, carts cartAccess, cfg config.CheckoutConfig, logg *logger.Logger) (Service, error) {
	if states == nil {
		return nil, fmt.Errorf("state store required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if cfg.TaxRateBps < 0 {
		return nil, fmt.Errorf("tax rate must be non-negative")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		states: states,
		carts:  carts,
		cfg:    cfg,
		logg:   logg,
	}, nil
}

// StatusResult reports where the session stands in the flow plus the stored
// shipping snapshot so a reloaded client can resume the form.
type StatusResult struct {
	Step     enums.CheckoutStep     `json:"step"`
	Shipping *checkout.ShippingForm `json:"shipping,omitempty"`
}

// OrderTotals is the price breakdown of a completed order.
type OrderTotals struct {
	Subtotal    int64   `json:"subtotal"`
	Tax         float64 `json:"tax"`
	ShippingFee int64   `json:"shipping_fee"`
	Total       float64 `json:"total"`
}

// Confirmation is the synthetic order record. It is returned once and
// persisted nowhere.
type Confirmation struct {
	OrderNumber      string          `json:"order_number"`
	DeliveryEstimate string          `json:"delivery_estimate"`
	Email            string          `json:"email"`
	Items            []cart.LineItem `json:"items"`
	Totals           OrderTotals     `json:"totals"`
}

// Status returns the session's current step, defaulting to the shipping
// step when no flow has started.
func (s *service) Status(ctx context.Context, sessionID string) (*StatusResult, error) {
	state, err := s.states.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout state")
	}
	if state == nil {
		return &StatusResult{Step: enums.CheckoutStepShipping}, nil
	}
	return &StatusResult{Step: state.Step, Shipping: state.Shipping}, nil
}

// SubmitShipping validates the shipping form and advances to the payment
// step. Field failures never advance the flow.
func (s *service) SubmitShipping(ctx context.Context, sessionID string, form checkout.ShippingForm) (*StatusResult, error) {
	if fieldErrs := checkout.ValidateShipping(form); !fieldErrs.Ok() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping details incomplete").WithDetails(fieldErrs)
	}

	state := &State{Step: enums.CheckoutStepPayment, Shipping: &form}
	if err := s.states.Save(ctx, sessionID, state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save checkout state")
	}
	return &StatusResult{Step: state.Step, Shipping: state.Shipping}, nil
}

// SubmitPayment validates the card format, requires a completed shipping
// step and a non-empty cart, then completes the order: totals are computed,
// the cart is cleared, the flow state is dropped, and the confirmation is
// the only record of the purchase.
func (s *service) SubmitPayment(ctx context.Context, sessionID string, form checkout.PaymentForm) (*Confirmation, error) {
	if fieldErrs := checkout.ValidatePayment(form); !fieldErrs.Ok() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment details invalid").WithDetails(fieldErrs)
	}

	state, err := s.states.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout state")
	}
	if state == nil || state.Step != enums.CheckoutStepPayment || state.Shipping == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "shipping step must be completed first")
	}

	view, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	totals := s.computeTotals(view.Total)

	orderNumber, err := newOrderNumber(s.cfg.OrderPrefix)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate order number")
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := s.states.Delete(ctx, sessionID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete checkout state")
	}

	logCtx := s.logg.WithFields(s.logg.WithSessionID(ctx, sessionID), map[string]any{
		"order_number": orderNumber,
		"items":        len(view.Items),
	})
	s.logg.Info(logCtx, "checkout completed")

	return &Confirmation{
		OrderNumber:      orderNumber,
		DeliveryEstimate: s.cfg.DeliveryEstimate,
		Email:            state.Shipping.Email,
		Items:            view.Items,
		Totals:           totals,
	}, nil
}

// computeTotals applies the flat tax rate and the shipping fee. The fee is
// charged whenever the cart is non-empty, which it always is here.
func (s *service) computeTotals(subtotal int64) OrderTotals {
	sub := decimal.NewFromInt(subtotal)
	tax := sub.Mul(decimal.NewFromInt(int64(s.cfg.TaxRateBps))).
		DivRound(decimal.NewFromInt(10000), 2)
	fee := decimal.NewFromInt(s.cfg.ShippingFee)
	total := sub.Add(tax).Add(fee)

	return OrderTotals{
		Subtotal:    subtotal,
		Tax:         tax.InexactFloat64(),
		ShippingFee: s.cfg.ShippingFee,
		Total:       total.InexactFloat64(),
	}
}
