package utils

import (
	"fmt"

	"github.com/deckform/deckform/internal/middleware"
	"github.com/deckform/deckform/internal/types"
	"github.com/gin-gonic/gin"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// OptionalUserID returns the signed-in user's id, or nil for anonymous
// callers.
func OptionalUserID(ctx *gin.Context) *uint {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return nil
	}

	return &user.ID
}
