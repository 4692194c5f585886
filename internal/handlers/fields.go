package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/deckform/deckform/db"
	"github.com/deckform/deckform/internal/crud"
	"github.com/deckform/deckform/internal/models"
	"github.com/deckform/deckform/internal/types"
	"github.com/deckform/deckform/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateFieldRequest struct {
	Label    string   `json:"label" binding:"required,min=1,max=200"`
	Type     string   `json:"type" binding:"required,oneof=text multiple_choice checkbox dropdown"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

type UpdateFieldRequest struct {
	Label    *string   `json:"label" binding:"omitempty,min=1,max=200"`
	Type     *string   `json:"type" binding:"omitempty,oneof=text multiple_choice checkbox dropdown"`
	Options  *[]string `json:"options"`
	Required *bool     `json:"required"`
}

// ownedForm is the parent guard shared by the field routes, mirroring
// ownedDeck for cards.
func ownedForm(ctx *gin.Context, action string) (*models.Form, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}

	formID, ok := paramUint(ctx, "form_id")

	if !ok {
		return nil, false
	}

	form, err := crud.FirstOwned(db.DB, formID, userID, formOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Form not found", "Unauthorized to "+action+" fields in this form")
		return nil, false
	}

	return form, true
}

func marshalOptions(options []string) datatypes.JSON {
	if options == nil {
		options = []string{}
	}

	raw, err := json.Marshal(options)

	if err != nil {
		return datatypes.JSON("[]")
	}

	return datatypes.JSON(raw)
}

func ListFields(ctx *gin.Context) {
	form, ok := ownedForm(ctx, "fetch")

	if !ok {
		return
	}

	q, ok := bindListQuery(ctx)

	if !ok {
		return
	}

	fields, meta, err := crud.List[models.Field](func() *gorm.DB {
		tx := db.DB.Model(&models.Field{}).Where("form_id = ?", form.ID)
		return crud.ApplySearch(tx, q.Search, "label")
	}, q, "date")

	if err != nil {
		log.Printf("Failed to list fields: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to retrieve fields")
		return
	}

	data := make([]types.FieldResponse, 0, len(fields))

	for i := range fields {
		data = append(data, types.NewFieldResponse(&fields[i]))
	}

	respondList(ctx, "Fields retrieved successfully", data, meta)
}

func GetField(ctx *gin.Context) {
	form, ok := ownedForm(ctx, "fetch")

	if !ok {
		return
	}

	fieldID, ok := paramUint(ctx, "field_id")

	if !ok {
		return
	}

	var field models.Field

	if err := db.DB.Where("id = ? AND form_id = ?", fieldID, form.ID).First(&field).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Field not found")
		} else {
			log.Printf("Failed to fetch field: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Failed to retrieve field")
		}
		return
	}

	respond(ctx, http.StatusOK, "Field retrieved successfully", types.NewFieldResponse(&field))
}

func CreateField(ctx *gin.Context) {
	form, ok := ownedForm(ctx, "add")

	if !ok {
		return
	}

	var req CreateFieldRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	field := models.Field{
		Label:    req.Label,
		Type:     req.Type,
		Options:  marshalOptions(req.Options),
		Required: req.Required,
		Date:     time.Now(),
		FormID:   form.ID,
	}

	if err := db.DB.Create(&field).Error; err != nil {
		log.Printf("Failed to create field: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to create field")
		return
	}

	// Separate statement from the insert; not transactional, so the count can
	// drift under concurrent writers.
	if err := db.DB.Model(&models.Form{}).Where("id = ?", form.ID).
		Update("number_of_fields", form.NumberOfFields+1).Error; err != nil {
		log.Printf("Failed to update field count for form %d: %v", form.ID, err)
	}

	respond(ctx, http.StatusCreated, "Field created successfully", types.NewFieldResponse(&field))
}

func UpdateField(ctx *gin.Context) {
	form, ok := ownedForm(ctx, "edit")

	if !ok {
		return
	}

	fieldID, ok := paramUint(ctx, "field_id")

	if !ok {
		return
	}

	var req UpdateFieldRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var field models.Field

	if err := db.DB.Where("id = ? AND form_id = ?", fieldID, form.ID).First(&field).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Field not found")
		} else {
			log.Printf("Failed to fetch field: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Failed to retrieve field")
		}
		return
	}

	if req.Label != nil {
		field.Label = *req.Label
	}

	if req.Type != nil {
		field.Type = *req.Type
	}

	if req.Options != nil {
		field.Options = marshalOptions(*req.Options)
	}

	if req.Required != nil {
		field.Required = *req.Required
	}

	if err := db.DB.Save(&field).Error; err != nil {
		log.Printf("Failed to update field: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to update field")
		return
	}

	respond(ctx, http.StatusOK, "Field updated successfully", types.NewFieldResponse(&field))
}

func DeleteField(ctx *gin.Context) {
	form, ok := ownedForm(ctx, "delete")

	if !ok {
		return
	}

	fieldID, ok := paramUint(ctx, "field_id")

	if !ok {
		return
	}

	var field models.Field

	if err := db.DB.Where("id = ? AND form_id = ?", fieldID, form.ID).First(&field).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Field not found")
		} else {
			log.Printf("Failed to fetch field: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Failed to retrieve field")
		}
		return
	}

	if err := db.DB.Delete(&field).Error; err != nil {
		log.Printf("Failed to delete field: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete field")
		return
	}

	if err := db.DB.Model(&models.Form{}).Where("id = ?", form.ID).
		Update("number_of_fields", form.NumberOfFields-1).Error; err != nil {
		log.Printf("Failed to update field count for form %d: %v", form.ID, err)
	}

	respond(ctx, http.StatusOK, "Field deleted successfully", types.NewFieldResponse(&field))
}
