package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/deckform/deckform/db"
	"github.com/deckform/deckform/internal/auth"
	"github.com/deckform/deckform/internal/models"
	"github.com/deckform/deckform/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=8,strongpassword"`
}

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func SignUp(ctx *gin.Context) {
	var req SignUpRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	passwordHash, err := auth.HashPassword(req.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	newUser := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: passwordHash,
	}

	// The unique index on username is the single source of truth; no
	// check-then-insert window for concurrent sign-ups to slip through.
	if err := db.DB.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(ctx, http.StatusUnauthorized, "Username already in use, please try a different one")
			return
		}
		log.Printf("Failed to create user: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	session, err := auth.CreateSession(newUser.ID)

	if err != nil {
		log.Printf("Failed to create session: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	auth.SetSessionCookie(ctx, session.ID)

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "You have been signed up!",
		"user":    types.NewUserResponse(&newUser),
	})
}

func SignIn(ctx *gin.Context) {
	var req SignInRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var user models.User

	err := db.DB.Where("username = ?", req.Username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	valid, err := auth.VerifyPassword(user.PasswordHash, req.Password)

	if err != nil || !valid {
		respondError(ctx, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	session, err := auth.CreateSession(user.ID)

	if err != nil {
		log.Printf("Failed to create session: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	auth.SetSessionCookie(ctx, session.ID)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "You have been signed in!",
		"user":    types.NewUserResponse(&user),
	})
}

func SignOut(ctx *gin.Context) {
	token := auth.ReadSessionToken(ctx)

	if token == "" {
		respondError(ctx, http.StatusUnauthorized, "No session found")
		return
	}

	if err := auth.InvalidateSession(token); err != nil {
		log.Printf("Failed to invalidate session: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	auth.ClearSessionCookie(ctx)

	respond(ctx, http.StatusOK, "You have been signed out!", nil)
}

// ValidateSession reports whether the caller holds a live session. No side
// effects beyond expired-session cleanup inside the session lookup.
func ValidateSession(ctx *gin.Context) {
	token := auth.ReadSessionToken(ctx)

	if token == "" {
		ctx.JSON(http.StatusOK, types.APIResponse{Success: false, Message: "Session is not valid"})
		return
	}

	if _, _, err := auth.ValidateSession(token); err != nil {
		ctx.JSON(http.StatusOK, types.APIResponse{Success: false, Message: "Session is not valid"})
		return
	}

	ctx.JSON(http.StatusOK, types.APIResponse{Success: true, Message: "Session is valid"})
}
