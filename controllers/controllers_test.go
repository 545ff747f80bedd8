package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-headphone-store/config"
	"go-headphone-store/middleware"
	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTExpiresIn:    time.Hour,
		CookieExpiresIn: time.Hour,
		Environment:     "development",
	}
}

func testTokens() *utils.TokenService {
	cfg := testConfig()
	return utils.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
}

// seedUser stores a user with the given plain password hashed.
func seedUser(t *testing.T, users *store.MemoryUserStore, email, mobile, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:      "A",
		MobileNo:  mobile,
		Email:     email,
		Password:  string(hash),
		Cart:      []models.CartItem{},
		Checkout:  []models.CheckoutRecord{},
		Invoices:  []models.Invoice{},
		CreatedAt: time.Now(),
	}
	require.NoError(t, users.CreateUser(context.Background(), user))
	return user
}

// authedRequest builds a request whose context already carries the user, as
// the auth gate would leave it.
func authedRequest(t *testing.T, users *store.MemoryUserStore, user *models.User, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	// Reload so the context carries current cart/checkout/invoice state.
	current, err := users.UserByID(context.Background(), user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.ContextWithUser(req.Context(), current))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
