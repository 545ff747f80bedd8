package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"go-headphone-store/middleware"
	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

// CartController handles cart-related requests.
type CartController struct {
	Users  store.UserStore
	Logger *zap.Logger
}

// NewCartController creates a new CartController.
func NewCartController(users store.UserStore, logger *zap.Logger) *CartController {
	return &CartController{
		Users:  users,
		Logger: logger,
	}
}

// AddToCart appends an item to the authenticated user's cart. The item id
// is not checked against the catalog; duplicates are allowed.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if req.ItemID == "" {
		utils.WriteFail(w, http.StatusBadRequest, "Please provide an item id!")
		return
	}

	if err := cc.Users.PushCartItem(r.Context(), user.ID, models.CartItem{ItemID: req.ItemID}); err != nil {
		cc.Logger.Error("add to cart error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Item added to cart successfully")
}

// GetCart returns the authenticated user's cart.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	cart := user.Cart
	if cart == nil {
		cart = []models.CartItem{}
	}

	utils.WriteData(w, http.StatusOK, map[string]interface{}{"cart": cart})
}

// RemoveFromCart removes the first cart entry matching the item id.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if req.ItemID == "" {
		utils.WriteFail(w, http.StatusBadRequest, "Please provide an item id!")
		return
	}

	if err := cc.Users.RemoveCartItem(r.Context(), user.ID, req.ItemID); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			utils.WriteFail(w, http.StatusNotFound, "Item not found in the cart")
			return
		}
		cc.Logger.Error("remove from cart error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Item removed from cart successfully")
}

// ClearCart empties the authenticated user's cart unconditionally.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	if err := cc.Users.ClearCart(r.Context(), user.ID); err != nil {
		cc.Logger.Error("clear cart error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "All items removed from cart successfully")
}
