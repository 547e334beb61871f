package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	cartsvc "github.com/angelmondragon/storefront-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// CartFetch returns the priced cart for the caller's identity.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Get(r.Context(), identityFromRequest(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartAdd adds quantity units of an item to the cart.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartsvc.ItemInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID, err := uuid.Parse(payload.ItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, validators.ValidationFailed(validators.FieldError{Field: "itemId", Message: "must be a valid id"}))
			return
		}

		cart, err := svc.Add(r.Context(), identityFromRequest(r), itemID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartsvc.MutationResult{Success: true, Cart: cart})
	}
}

// CartUpdate sets the quantity of an item already in the cart. A zero
// quantity is rejected before field validation so the caller is pointed at DELETE.
func CartUpdate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartsvc.ItemInput
		if err := validators.DecodeJSON(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var itemID uuid.UUID
		if payload.Quantity != 0 {
			if err := validators.Validate(&payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			parsed, err := uuid.Parse(payload.ItemID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, validators.ValidationFailed(validators.FieldError{Field: "itemId", Message: "must be a valid id"}))
				return
			}
			itemID = parsed
		}

		cart, err := svc.Update(r.Context(), identityFromRequest(r), itemID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartsvc.MutationResult{Success: true, Cart: cart})
	}
}

// CartRemove drops an item from the cart. Removing an absent item succeeds,
// including ids that could never be in a cart.
func CartRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteSuccess(w, map[string]bool{"success": true})
			return
		}

		if err := svc.Remove(r.Context(), identityFromRequest(r), itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Clear(r.Context(), identityFromRequest(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartsvc.MutationResult{Success: true, Cart: cart})
	}
}

// CartMerge folds the guest cart into the authenticated user's cart and
// expires the guest cookie once the guest cart is gone.
func CartMerge(svc cartsvc.Service, secureCookies bool, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Missing or invalid token format"))
			return
		}

		result, err := svc.Merge(r.Context(), userID, middleware.GuestIDPtr(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if result.ClearGuest {
			middleware.ClearGuestCookie(w, secureCookies)
		}
		responses.WriteSuccess(w, result)
	}
}

func identityFromRequest(r *http.Request) cartsvc.Identity {
	return cartsvc.ResolveIdentity(middleware.UserIDPtr(r.Context()), middleware.GuestIDPtr(r.Context()))
}
