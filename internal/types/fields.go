package types

import (
	"encoding/json"

	"github.com/deckform/deckform/internal/models"
)

func NewFieldResponse(field *models.Field) FieldResponse {
	options := []string{}

	if len(field.Options) > 0 {
		// a corrupt options column reads as an empty list
		_ = json.Unmarshal(field.Options, &options)
	}

	return FieldResponse{
		ID:       field.ID,
		Label:    field.Label,
		Type:     field.Type,
		Options:  options,
		Required: field.Required,
		Date:     field.Date,
		FormID:   field.FormID,
	}
}
