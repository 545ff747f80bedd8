package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-headphone-store/config"
	"go-headphone-store/middleware"
	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

// Generic message for failed logins; identical for unknown users and wrong
// passwords so the response never discloses whether an account exists.
const loginFailedMessage = "Incorrect email/mobile number or password"

// UserController handles signup, login, logout and profile requests.
type UserController struct {
	Users  store.UserStore
	Tokens *utils.TokenService
	Config *config.Config
	Logger *zap.Logger
}

// NewUserController creates a new UserController.
func NewUserController(users store.UserStore, tokens *utils.TokenService, cfg *config.Config, logger *zap.Logger) *UserController {
	return &UserController{
		Users:  users,
		Tokens: tokens,
		Config: cfg,
		Logger: logger,
	}
}

// sendToken issues a session token for the user, sets the jwt cookie and
// writes the token plus the user (password never serialized) to the client.
func (uc *UserController) sendToken(w http.ResponseWriter, statusCode int, user *models.User) {
	token, err := uc.Tokens.Issue(user.ID.Hex())
	if err != nil {
		uc.Logger.Error("issue token error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(uc.Config.CookieExpiresIn),
		HttpOnly: true,
		Secure:   uc.Config.Production(),
	})

	utils.WriteJSON(w, statusCode, map[string]interface{}{
		"status": "success",
		"token":  token,
		"data":   map[string]interface{}{"user": user},
	})
}

// Signup handles user registration. A successful signup logs the user in
// immediately.
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		MobileNo string `json:"mobileNo"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if req.Name == "" || req.MobileNo == "" || req.Email == "" || req.Password == "" {
		utils.WriteFail(w, http.StatusBadRequest, "Please provide name, mobile number, email and password!")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.Logger.Error("hash password error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	user := &models.User{
		Name:      req.Name,
		MobileNo:  req.MobileNo,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Cart:      []models.CartItem{},
		Checkout:  []models.CheckoutRecord{},
		Invoices:  []models.Invoice{},
		CreatedAt: time.Now(),
	}

	if err := uc.Users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			utils.WriteFail(w, http.StatusBadRequest, "User with this email already exists")
			return
		}
		uc.Logger.Error("create user error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	uc.sendToken(w, http.StatusCreated, user)
}

// Login authenticates a user by email or mobile number.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if req.Identifier == "" || req.Password == "" {
		utils.WriteFail(w, http.StatusBadRequest, "Please provide email/mobile number and password!")
		return
	}

	identifier, err := models.ParseIdentifier(req.Identifier)
	if err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Please provide a valid email/mobile number!")
		return
	}

	var user *models.User
	switch identifier.Kind {
	case models.IdentifierEmail:
		user, err = uc.Users.UserByEmail(r.Context(), identifier.Value)
	case models.IdentifierMobile:
		user, err = uc.Users.UserByMobile(r.Context(), identifier.Value)
	}
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteFail(w, http.StatusUnauthorized, loginFailedMessage)
			return
		}
		uc.Logger.Error("find user error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.WriteFail(w, http.StatusUnauthorized, loginFailedMessage)
		return
	}

	uc.sendToken(w, http.StatusOK, user)
}

// Logout instructs the client to discard its token. There is no server-side
// invalidation list; the cookie is simply overwritten with a short-lived
// placeholder.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "loggedout",
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
	})

	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// GetUser returns the authenticated user's profile.
func (uc *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	utils.WriteData(w, http.StatusOK, map[string]interface{}{"user": user})
}

// UpdatePassword changes the authenticated user's password. Tokens issued
// before the change become stale at the auth gate; the response carries a
// fresh token.
func (uc *UserController) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	var req struct {
		PasswordCurrent string `json:"passwordCurrent"`
		Password        string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if req.PasswordCurrent == "" || req.Password == "" {
		utils.WriteFail(w, http.StatusBadRequest, "Please provide your current and new password!")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.PasswordCurrent)); err != nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Your current password is wrong.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.Logger.Error("hash password error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	changedAt := time.Now()
	if err := uc.Users.UpdatePassword(r.Context(), user.ID, string(hashedPassword), changedAt); err != nil {
		uc.Logger.Error("update password error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	user.Password = string(hashedPassword)
	user.PasswordChangedAt = changedAt

	uc.sendToken(w, http.StatusOK, user)
}
