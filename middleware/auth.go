package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

// Key type for context
type contextKey string

const userContextKey = contextKey("user")

// AuthGate is the single enforcement point for protected routes. It
// resolves a request's session token into a live user or rejects with 401.
type AuthGate struct {
	tokens *utils.TokenService
	users  store.UserStore
}

// NewAuthGate creates an AuthGate over the given token service and user store.
func NewAuthGate(tokens *utils.TokenService, users store.UserStore) *AuthGate {
	return &AuthGate{
		tokens: tokens,
		users:  users,
	}
}

// Middleware verifies the session token, resolves the user and attaches it
// to the request context.
func (g *AuthGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractToken(r)
		if tokenStr == "" {
			utils.WriteFail(w, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			return
		}

		userID, issuedAt, err := g.tokens.Verify(tokenStr)
		if err != nil {
			utils.WriteFail(w, http.StatusUnauthorized, "Invalid token. Please log in again.")
			return
		}

		id, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			utils.WriteFail(w, http.StatusUnauthorized, "Invalid token. Please log in again.")
			return
		}

		user, err := g.users.UserByID(r.Context(), id)
		if err != nil {
			utils.WriteFail(w, http.StatusUnauthorized, "The user belonging to this token does no longer exist.")
			return
		}

		if passwordChangedAfter(user, issuedAt) {
			utils.WriteFail(w, http.StatusUnauthorized, "User recently changed password! Please log in again.")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// extractToken pulls the session token from the Authorization header or,
// failing that, the jwt cookie set at login.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := r.Cookie("jwt"); err == nil {
		return cookie.Value
	}

	return ""
}

// passwordChangedAfter reports whether the password changed strictly after
// the token was issued, compared at second precision to match the token's
// issued-at claim.
func passwordChangedAfter(user *models.User, issuedAt time.Time) bool {
	if user.PasswordChangedAt.IsZero() {
		return false
	}
	return user.PasswordChangedAt.Unix() > issuedAt.Unix()
}

// ContextWithUser attaches an authenticated user to the context.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
