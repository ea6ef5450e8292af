package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velora-motors/storefront-backend/api/responses"
	"github.com/velora-motors/storefront-backend/internal/catalog"
	"github.com/velora-motors/storefront-backend/pkg/enums"
	pkgerrors "github.com/velora-motors/storefront-backend/pkg/errors"
	"github.com/velora-motors/storefront-backend/pkg/logger"
	"github.com/velora-motors/storefront-backend/pkg/pagination"
)

// CatalogList handles the browse endpoint: free-text query, price range,
// category filter, sorting, and pagination over the compiled-in table.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		input, err := parseListInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListVehicles(r.Context(), *input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CatalogDetail returns a single listing by its id.
func CatalogDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		vehicle, err := svc.GetVehicle(r.Context(), chi.URLParam(r, "vehicleId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vehicle)
	}
}

// CatalogFeatured returns the landing carousel slides.
func CatalogFeatured(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		result, err := svc.Featured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CatalogOptions returns the customization colors and interior packages.
func CatalogOptions(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		result, err := svc.Options(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func parseListInput(r *http.Request) (*catalog.ListVehiclesInput, error) {
	q := r.URL.Query()

	input := catalog.ListVehiclesInput{Query: q.Get("q")}

	if raw := q.Get("price_min"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_min must be a number")
		}
		input.PriceMin = &value
	}
	if raw := q.Get("price_max"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_max must be a number")
		}
		input.PriceMax = &value
	}
	if raw := q.Get("category"); raw != "" {
		category, err := enums.ParseVehicleCategory(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown vehicle category")
		}
		input.Category = &category
	}

	sortBy, err := enums.ParseSortOption(q.Get("sort"))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort option")
	}
	input.Sort = sortBy

	var params pagination.Params
	if raw := q.Get("page"); raw != "" {
		if params.Page, err = strconv.Atoi(raw); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "page must be a number")
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if params.Limit, err = strconv.Atoi(raw); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a number")
		}
	}
	input.Pagination = params

	return &input, nil
}
