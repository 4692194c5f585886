package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/deckform/deckform/db"
	"github.com/deckform/deckform/internal/crud"
	"github.com/deckform/deckform/internal/models"
	"github.com/deckform/deckform/internal/types"
	"github.com/deckform/deckform/internal/utils"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const (
	shareIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	shareIDLen      = 10
)

// CreateShareLink generates the public token for a form. Idempotent: a second
// call returns the existing token instead of minting another.
func CreateShareLink(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	formID, ok := paramUint(ctx, "form_id")

	if !ok {
		return
	}

	form, err := crud.FirstOwned(db.DB, formID, userID, formOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Form not found", "Unauthorized to generate share link for this form")
		return
	}

	var link models.ShareLink

	err = db.DB.Where("form_id = ?", form.ID).First(&link).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		shareID, genErr := gonanoid.Generate(shareIDAlphabet, shareIDLen)

		if genErr != nil {
			log.Printf("Failed to generate share id: %v", genErr)
			respondError(ctx, http.StatusInternalServerError, "Failed to generate share link")
			return
		}

		link = models.ShareLink{FormID: form.ID, ShareID: shareID}

		if err := db.DB.Create(&link).Error; err != nil {
			log.Printf("Failed to create share link: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Failed to generate share link")
			return
		}
	} else if err != nil {
		log.Printf("Failed to fetch share link: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to generate share link")
		return
	}

	respond(ctx, http.StatusOK, "Share link generated successfully",
		types.ShareLinkResponse{ShareID: link.ShareID})
}

// GetSharedForm is the public read path: share token in, form definition and
// fields out, no authentication.
func GetSharedForm(ctx *gin.Context) {
	shareID := ctx.Param("share_id")

	var link models.ShareLink

	if err := db.DB.Where("share_id = ?", shareID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Share link not found or invalid")
		} else {
			log.Printf("Failed to fetch share link: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	var form models.Form

	if err := db.DB.First(&form, link.FormID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Form not found")
		} else {
			log.Printf("Failed to fetch form: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	var fields []models.Field

	if err := db.DB.Where("form_id = ?", form.ID).Order("date asc, id asc").Find(&fields).Error; err != nil {
		log.Printf("Failed to fetch fields for form %d: %v", form.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	payload := types.SharedFormResponse{
		Form:   types.NewFormResponse(&form),
		Fields: make([]types.FieldResponse, 0, len(fields)),
	}

	for i := range fields {
		payload.Fields = append(payload.Fields, types.NewFieldResponse(&fields[i]))
	}

	respond(ctx, http.StatusOK, "Form retrieved successfully", payload)
}

// DeleteShareLink revokes a share token. Only the owner of the underlying
// form may do this.
func DeleteShareLink(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	shareID := ctx.Param("share_id")

	var link models.ShareLink

	if err := db.DB.Where("share_id = ?", shareID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Share link not found")
		} else {
			log.Printf("Failed to fetch share link: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if _, err := crud.FirstOwned(db.DB, link.FormID, userID, formOwner); err != nil {
		respondOwnershipError(ctx, err,
			"Form associated with this share link not found",
			"Unauthorized to delete this share link")
		return
	}

	if err := db.DB.Delete(&link).Error; err != nil {
		log.Printf("Failed to delete share link: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete share link")
		return
	}

	respond(ctx, http.StatusOK, "Share link deleted successfully", nil)
}

// CheckShareLink reports whether a share link exists for a form without
// creating one.
func CheckShareLink(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	formID, ok := paramUint(ctx, "form_id")

	if !ok {
		return
	}

	form, err := crud.FirstOwned(db.DB, formID, userID, formOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Form not found", "Unauthorized to check share link for this form")
		return
	}

	var link models.ShareLink

	if err := db.DB.Where("form_id = ?", form.ID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(ctx, http.StatusOK, "No share link found for this form", nil)
		} else {
			log.Printf("Failed to fetch share link: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Error checking for existing share link")
		}
		return
	}

	respond(ctx, http.StatusOK, "Share link found", types.ShareLinkResponse{ShareID: link.ShareID})
}
