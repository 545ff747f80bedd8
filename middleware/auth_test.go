package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

func newTestGate(t *testing.T) (*AuthGate, *store.MemoryUserStore, *utils.TokenService) {
	t.Helper()

	tokens := utils.NewTokenService("test-secret", time.Hour)
	users := store.NewMemoryUserStore()
	return NewAuthGate(tokens, users), users, tokens
}

func createTestUser(t *testing.T, users *store.MemoryUserStore) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "A",
		MobileNo: "5551234",
		Email:    "a@x.com",
		Password: "irrelevant-hash",
	}
	require.NoError(t, users.CreateUser(context.Background(), user))
	return user
}

func protectedProbe(gate *AuthGate) (http.Handler, *bool, **models.User) {
	called := false
	var seen *models.User
	handler := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &called, &seen
}

func TestAuthGateMissingToken(t *testing.T) {
	gate, _, _ := newTestGate(t)
	handler, called, _ := protectedProbe(gate)

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestAuthGateGarbageToken(t *testing.T) {
	gate, _, _ := newTestGate(t)
	handler, called, _ := protectedProbe(gate)

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestAuthGateDeletedUser(t *testing.T) {
	gate, _, tokens := newTestGate(t)
	handler, called, _ := protectedProbe(gate)

	// Token for a user the store has never seen.
	token, err := tokens.Issue("64b6f3f0a1b2c3d4e5f60718")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestAuthGateStaleTokenAfterPasswordChange(t *testing.T) {
	gate, users, tokens := newTestGate(t)
	handler, called, _ := protectedProbe(gate)

	user := createTestUser(t, users)
	token, err := tokens.Issue(user.ID.Hex())
	require.NoError(t, err)

	// Password changes after the token was issued; the token is not
	// expired but must be rejected anyway.
	changedAt := time.Now().Add(2 * time.Second)
	require.NoError(t, users.UpdatePassword(context.Background(), user.ID, "new-hash", changedAt))

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestAuthGateSuccessAttachesUser(t *testing.T) {
	gate, users, tokens := newTestGate(t)
	handler, called, seen := protectedProbe(gate)

	user := createTestUser(t, users)
	token, err := tokens.Issue(user.ID.Hex())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *called)
	require.NotNil(t, *seen)
	require.Equal(t, user.ID, (*seen).ID)
}

func TestAuthGateCookieFallback(t *testing.T) {
	gate, users, tokens := newTestGate(t)
	handler, called, _ := protectedProbe(gate)

	user := createTestUser(t, users)
	token, err := tokens.Issue(user.ID.Hex())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *called)
}
