package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"go-headphone-store/middleware"
	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

// CheckoutController snapshots the cart into an immutable checkout record.
type CheckoutController struct {
	Users   store.UserStore
	Catalog store.DataStore
	Logger  *zap.Logger
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(users store.UserStore, catalog store.DataStore, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		Users:   users,
		Catalog: catalog,
		Logger:  logger,
	}
}

// Checkout moves the entire cart into a new checkout record and empties the
// cart in a single store update, so the two changes are never observed
// apart. When every cart item resolves against the catalog, the total is
// recomputed from catalog prices instead of trusting the caller's figure.
func (cc *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	var req struct {
		TotalAmount float64 `json:"totalAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	totalAmount := req.TotalAmount
	if resolved, ok := cc.resolveTotal(r.Context(), user.Cart); ok {
		totalAmount = resolved
	}

	if err := cc.Users.Checkout(r.Context(), user.ID, totalAmount, time.Now()); err != nil {
		cc.Logger.Error("checkout error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Checkout successful")
}

// resolveTotal recomputes the cart total from catalog prices. It applies
// only when every cart entry carries a numeric id known to the catalog;
// otherwise the caller's figure stands.
func (cc *CheckoutController) resolveTotal(ctx context.Context, cart []models.CartItem) (float64, bool) {
	if len(cart) == 0 {
		return 0, false
	}

	ids := make([]int, 0, len(cart))
	for _, item := range cart {
		id, err := strconv.Atoi(item.ItemID)
		if err != nil {
			return 0, false
		}
		ids = append(ids, id)
	}

	items, err := cc.Catalog.ByNumericIDs(ctx, ids)
	if err != nil {
		cc.Logger.Error("catalog lookup error", zap.Error(err))
		return 0, false
	}

	prices := make(map[int]float64, len(items))
	for _, item := range items {
		prices[item.ID] = item.Price
	}

	total := 0.0
	for _, id := range ids {
		price, ok := prices[id]
		if !ok {
			return 0, false
		}
		total += price
	}
	return total, true
}
