package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/deckform/deckform/internal/crud"
	"github.com/deckform/deckform/internal/types"
	"github.com/deckform/deckform/internal/validation"
	"github.com/gin-gonic/gin"
)

func respond(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, types.APIResponse{Success: true, Message: message, Data: data})
}

func respondList(ctx *gin.Context, message string, data any, meta types.PageMeta) {
	ctx.JSON(http.StatusOK, types.APIResponse{Success: true, Message: message, Data: data, Meta: meta})
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, types.APIResponse{Success: false, Message: message})
}

// respondValidationError renders a binding failure as the documented 400
// shape: message carries the first issue, meta carries them all.
func respondValidationError(ctx *gin.Context, err error) {
	issues := validation.Issues(err)

	ctx.JSON(http.StatusBadRequest, types.APIResponse{
		Success: false,
		Message: issues[0].Path + ": " + issues[0].Message,
		Meta:    gin.H{"issues": issues},
	})
}

// respondOwnershipError maps the ownership predicate's sentinel errors onto
// the 404/403 contract; anything else is an internal error whose detail stays
// in the server log.
func respondOwnershipError(ctx *gin.Context, err error, notFound, forbidden string) {
	switch {
	case errors.Is(err, crud.ErrNotFound):
		respondError(ctx, http.StatusNotFound, notFound)
	case errors.Is(err, crud.ErrForbidden):
		respondError(ctx, http.StatusForbidden, forbidden)
	default:
		log.Printf("Database error: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func paramUint(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)

	if err != nil || value == 0 {
		respondError(ctx, http.StatusBadRequest, name+": must be a positive integer")
		return 0, false
	}

	return uint(value), true
}

// bindListQuery parses the shared sort/search/page/limit parameters, applying
// defaults and responding 400 on violations.
func bindListQuery(ctx *gin.Context) (crud.ListQuery, bool) {
	var q crud.ListQuery

	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondValidationError(ctx, err)
		return q, false
	}

	q.Defaults()

	return q, true
}
