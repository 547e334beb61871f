package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

const itemNotFoundMessage = "Item not found"

// ItemsList serves the filtered, paginated catalog.
func ItemsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		input, err := parseListItemsInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListItems(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ItemDetail returns a single item. Ids that are not UUIDs are reported as missing.
func ItemDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage))
			return
		}

		item, err := svc.GetItem(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// ItemCategories lists the catalog categories.
func ItemCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string][]enums.ItemCategory{"categories": svc.Categories()})
	}
}

func parseListItemsInput(r *http.Request) (catalog.ListItemsInput, error) {
	q := r.URL.Query()
	var details []validators.FieldError

	page, fe := validators.ParsePositiveInt(r, "page", pagination.DefaultPage)
	if fe != nil {
		details = append(details, *fe)
	}
	limit, fe := validators.ParsePositiveInt(r, "limit", pagination.DefaultLimit)
	if fe != nil {
		details = append(details, *fe)
	}
	minPrice, fe := validators.ParseNonNegativeDecimal(r, "minPrice")
	if fe != nil {
		details = append(details, *fe)
	}
	maxPrice, fe := validators.ParseNonNegativeDecimal(r, "maxPrice")
	if fe != nil {
		details = append(details, *fe)
	}
	if minPrice != nil && maxPrice != nil && minPrice.GreaterThan(*maxPrice) {
		details = append(details, validators.FieldError{Field: "minPrice", Message: "must not exceed maxPrice"})
	}

	categories, err := catalog.ParseCategoryList(q.Get("category"))
	if err != nil {
		details = append(details, validators.FieldError{Field: "category", Message: err.Error()})
	}

	sort, err := enums.ParseItemSort(strings.TrimSpace(q.Get("sort")))
	if err != nil {
		details = append(details, validators.FieldError{Field: "sort", Message: err.Error()})
	}

	if len(details) > 0 {
		return catalog.ListItemsInput{}, validators.ValidationFailed(details...)
	}

	return catalog.ListItemsInput{
		Filters: catalog.ListFilters{
			Query:      strings.TrimSpace(q.Get("q")),
			Categories: categories,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			Sort:       sort,
		},
		Pagination: pagination.Params{Page: page, Limit: limit},
	}, nil
}
