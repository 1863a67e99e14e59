package api

import (
	"context"
	"net/http"

	"github.com/wellnest/wellnest-server/internal/api/respond"
	"github.com/wellnest/wellnest-server/internal/auth"
	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

type contextKey string

const userContextKey contextKey = "authUser"

// TokenGate authenticates protected routes. After the bearer token is
// verified, the user is re-fetched from the store on every request, so a
// token for a deleted account stops working immediately.
type TokenGate struct {
	signer *auth.Signer
	users  store.Users
}

func NewTokenGate(signer *auth.Signer, users store.Users) *TokenGate {
	return &TokenGate{signer: signer, users: users}
}

func (g *TokenGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := auth.ExtractBearerToken(r)
		if err != nil {
			respond.WriteUnauthorized(w, "No token, authorization denied.")
			return
		}
		userID, err := g.signer.Verify(tokenString)
		if err != nil {
			respond.WriteUnauthorized(w, "Token is not valid.")
			return
		}
		u, err := g.users.GetByID(r.Context(), userID)
		if err != nil {
			respond.WriteUnauthorized(w, "Token is not valid.")
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFrom returns the authenticated user the gate attached to the context.
func UserFrom(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userContextKey).(*model.User)
	return u, ok
}
