package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velora-motors/storefront-backend/api/middleware"
	"github.com/velora-motors/storefront-backend/api/responses"
	"github.com/velora-motors/storefront-backend/api/validators"
	"github.com/velora-motors/storefront-backend/internal/cart"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/logger"
)

// CartFetch returns the session's cart in insertion order with its total.
func CartFetch(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		view, err := svc.GetCart(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// CartAddItem appends a configured vehicle to the cart.
func CartAddItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		var body cart.AddItemInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.AddItem(r.Context(), sessionID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// CartRemoveItem removes a line item; unknown ids are a no-op.
func CartRemoveItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		view, err := svc.RemoveItem(r.Context(), sessionID, chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// CartClear empties the session's cart.
func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg, svc != nil)
		if !ok {
			return
		}

		if err := svc.Clear(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, &cart.View{Items: []cart.LineItem{}})
	}
}

func requireSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger, svcPresent bool) (string, bool) {
	if !svcPresent {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
		return "", false
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
		return "", false
	}
	return sessionID, true
}
