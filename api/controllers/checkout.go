package controllers

import (
	"net/http"

	"github.com/velora-motors/storefront-backend/api/middleware"
	"github.com/velora-motors/storefront-backend/api/responses"
	"github.com/velora-motors/storefront-backend/api/validators"
	checkoutsvc "github.com/velora-motors/storefront-backend/internal/checkout"
	pkgcheckout "github.com/velora-motors/storefront-backend/pkg/checkout"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/logger"
)

// CheckoutStatus reports the session's place in the flow plus the stored
// shipping form.
func CheckoutStatus(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireCheckoutSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		result, err := svc.Status(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CheckoutShipping validates the shipping form and advances the flow.
func CheckoutShipping(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireCheckoutSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		var body pkgcheckout.ShippingForm
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SubmitShipping(r.Context(), sessionID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CheckoutPayment validates the card form and completes the order.
func CheckoutPayment(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireCheckoutSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		var body pkgcheckout.PaymentForm
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.SubmitPayment(r.Context(), sessionID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, confirmation)
	}
}

func requireCheckoutSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger, svcPresent bool) (string, bool) {
	if !svcPresent {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
		return "", false
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
		return "", false
	}
	return sessionID, true
}
