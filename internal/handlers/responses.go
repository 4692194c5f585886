package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
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

type FieldResponseInput struct {
	FieldID  uint   `json:"fieldId" binding:"required"`
	Response string `json:"response"`
}

type CreateResponseRequest struct {
	FormID         uint                 `json:"formId" binding:"required"`
	FieldResponses []FieldResponseInput `json:"fieldResponses" binding:"required,dive"`
}

// CreateResponse accepts a submission against a form. This is the public
// share target, so no authentication is required; a valid session just gets
// recorded on the submission.
func CreateResponse(ctx *gin.Context) {
	var req CreateResponseRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var form models.Form

	if err := db.DB.First(&form, req.FormID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Form not found")
		} else {
			log.Printf("Failed to fetch form: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	var fields []models.Field

	if err := db.DB.Where("form_id = ?", form.ID).Find(&fields).Error; err != nil {
		log.Printf("Failed to fetch fields for form %d: %v", form.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	known := make(map[uint]*models.Field, len(fields))

	for i := range fields {
		known[fields[i].ID] = &fields[i]
	}

	answered := make(map[uint]bool, len(req.FieldResponses))

	for _, fr := range req.FieldResponses {
		if _, ok := known[fr.FieldID]; !ok {
			respondError(ctx, http.StatusBadRequest, fmt.Sprintf("Field %d not found", fr.FieldID))
			return
		}
		answered[fr.FieldID] = true
	}

	// Business-rule check, enforced before anything is persisted.
	for i := range fields {
		if fields[i].Required && !answered[fields[i].ID] {
			respondError(ctx, http.StatusBadRequest,
				fmt.Sprintf("Required field %q must be answered", fields[i].Label))
			return
		}
	}

	raw, err := json.Marshal(req.FieldResponses)

	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid response data")
		return
	}

	response := models.Response{
		FormID:         form.ID,
		FieldResponses: datatypes.JSON(raw),
		SubmittedAt:    time.Now(),
		UserID:         utils.OptionalUserID(ctx),
	}

	if err := db.DB.Create(&response).Error; err != nil {
		log.Printf("Failed to create response: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to create response")
		return
	}

	respond(ctx, http.StatusCreated, "Response created successfully", submissionPayload(&response, nil))
}

func ListFormResponses(ctx *gin.Context) {
	form, ok := ownedForm(ctx, "view responses for")

	if !ok {
		return
	}

	q, ok := bindListQuery(ctx)

	if !ok {
		return
	}

	responses, meta, err := crud.List[models.Response](func() *gorm.DB {
		tx := db.DB.Model(&models.Response{}).Where("form_id = ?", form.ID)
		return crud.ApplySearch(tx, q.Search, "CAST(field_responses AS TEXT)")
	}, q, "submitted_at")

	if err != nil {
		log.Printf("Failed to list responses: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to retrieve responses")
		return
	}

	labels := fieldLabels(form.ID)

	data := make([]types.SubmissionResponse, 0, len(responses))

	for i := range responses {
		data = append(data, submissionPayload(&responses[i], labels))
	}

	respondList(ctx, "Responses retrieved successfully", data, meta)
}

func GetResponse(ctx *gin.Context) {
	response, ok := ownedResponse(ctx, "fetch")

	if !ok {
		return
	}

	respond(ctx, http.StatusOK, "Response retrieved successfully",
		submissionPayload(response, fieldLabels(response.FormID)))
}

func DeleteResponse(ctx *gin.Context) {
	response, ok := ownedResponse(ctx, "delete")

	if !ok {
		return
	}

	if err := db.DB.Delete(response).Error; err != nil {
		log.Printf("Failed to delete response: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete response")
		return
	}

	respond(ctx, http.StatusOK, "Response deleted successfully", nil)
}

// ownedResponse loads a response and enforces ownership of its parent form.
func ownedResponse(ctx *gin.Context, action string) (*models.Response, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}

	responseID, ok := paramUint(ctx, "response_id")

	if !ok {
		return nil, false
	}

	var response models.Response

	if err := db.DB.First(&response, responseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Response not found")
		} else {
			log.Printf("Failed to fetch response: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Internal server error")
		}
		return nil, false
	}

	if _, err := crud.FirstOwned(db.DB, response.FormID, userID, formOwner); err != nil {
		respondOwnershipError(ctx, err, "Form not found", "Unauthorized to "+action+" this response")
		return nil, false
	}

	return &response, true
}

func fieldLabels(formID uint) map[uint]string {
	var fields []models.Field

	if err := db.DB.Select("id, label").Where("form_id = ?", formID).Find(&fields).Error; err != nil {
		log.Printf("Failed to fetch field labels for form %d: %v", formID, err)
		return nil
	}

	labels := make(map[uint]string, len(fields))

	for _, field := range fields {
		labels[field.ID] = field.Label
	}

	return labels
}

func submissionPayload(response *models.Response, labels map[uint]string) types.SubmissionResponse {
	var inputs []FieldResponseInput

	if err := json.Unmarshal(response.FieldResponses, &inputs); err != nil {
		inputs = nil
	}

	answers := make([]types.AnsweredField, 0, len(inputs))

	for _, input := range inputs {
		answers = append(answers, types.AnsweredField{
			FieldID:  input.FieldID,
			Response: input.Response,
			Label:    labels[input.FieldID],
		})
	}

	return types.SubmissionResponse{
		ID:             response.ID,
		FormID:         response.FormID,
		FieldResponses: answers,
		SubmittedAt:    response.SubmittedAt,
		UserID:         response.UserID,
	}
}
