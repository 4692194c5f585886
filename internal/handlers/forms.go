package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/deckform/deckform/db"
	"github.com/deckform/deckform/internal/crud"
	"github.com/deckform/deckform/internal/models"
	"github.com/deckform/deckform/internal/types"
	"github.com/deckform/deckform/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateFormRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100,titlechars"`
}

type UpdateFormRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=100,titlechars"`
}

func formOwner(form *models.Form) uint { return form.UserID }

func ListForms(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	q, ok := bindListQuery(ctx)

	if !ok {
		return
	}

	forms, meta, err := crud.List[models.Form](func() *gorm.DB {
		tx := db.DB.Model(&models.Form{}).Where("user_id = ?", userID)
		return crud.ApplySearch(tx, q.Search, "title")
	}, q, "date")

	if err != nil {
		log.Printf("Failed to list forms: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to retrieve forms")
		return
	}

	data := make([]types.FormResponse, 0, len(forms))

	for i := range forms {
		data = append(data, types.NewFormResponse(&forms[i]))
	}

	respondList(ctx, "Forms retrieved successfully", data, meta)
}

func GetForm(ctx *gin.Context) {
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
		respondOwnershipError(ctx, err, "Form not found", "Unauthorized to fetch this form")
		return
	}

	respond(ctx, http.StatusOK, "Form retrieved successfully", types.NewFormResponse(form))
}

func CreateForm(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateFormRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	form := models.Form{
		Title:          req.Title,
		NumberOfFields: 0,
		Date:           time.Now(),
		UserID:         userID,
	}

	if err := db.DB.Create(&form).Error; err != nil {
		log.Printf("Failed to create form: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to create form")
		return
	}

	respond(ctx, http.StatusCreated, "Form created successfully", types.NewFormResponse(&form))
}

func UpdateForm(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	formID, ok := paramUint(ctx, "form_id")

	if !ok {
		return
	}

	var req UpdateFormRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	form, err := crud.FirstOwned(db.DB, formID, userID, formOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Form not found", "Unauthorized to update this form")
		return
	}

	if req.Title != nil {
		form.Title = *req.Title
	}

	if err := db.DB.Save(form).Error; err != nil {
		log.Printf("Failed to update form: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to update form")
		return
	}

	respond(ctx, http.StatusOK, "Form updated successfully", types.NewFormResponse(form))
}

func DeleteForm(ctx *gin.Context) {
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
		respondOwnershipError(ctx, err, "Form not found", "Unauthorized to delete this form")
		return
	}

	// Cascade emulated here: fields, responses, and the share link go before
	// the form itself.
	if err := db.DB.Where("form_id = ?", form.ID).Delete(&models.Field{}).Error; err != nil {
		log.Printf("Failed to delete fields for form %d: %v", form.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete form")
		return
	}

	if err := db.DB.Where("form_id = ?", form.ID).Delete(&models.Response{}).Error; err != nil {
		log.Printf("Failed to delete responses for form %d: %v", form.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete form")
		return
	}

	if err := db.DB.Where("form_id = ?", form.ID).Delete(&models.ShareLink{}).Error; err != nil {
		log.Printf("Failed to delete share link for form %d: %v", form.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete form")
		return
	}

	if err := db.DB.Delete(form).Error; err != nil {
		log.Printf("Failed to delete form %d: %v", form.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete form")
		return
	}

	respond(ctx, http.StatusOK, "Form deleted successfully", types.NewFormResponse(form))
}
