package middleware

import (
	"net/http"

	"github.com/deckform/deckform/internal/auth"
	"github.com/deckform/deckform/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthenticatedUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Sessions resolves the session cookie on every request and attaches the user
// and session to the context when valid. It never rejects; routes that need a
// user apply RequireAuth on top.
func Sessions() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := auth.ReadSessionToken(ctx)

		if token == "" {
			ctx.Next()
			return
		}

		session, user, err := auth.ValidateSession(token)

		if err != nil {
			ctx.Next()
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
		})
		ctx.Set(types.ContextSessionKey, session.ID)
		ctx.Next()
	}
}

// RequireAuth rejects requests that did not resolve to a signed-in user.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, exists := ctx.Get(types.ContextUserKey); !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.APIResponse{
				Success: false,
				Message: "Authentication required",
			})
			return
		}

		ctx.Next()
	}
}
