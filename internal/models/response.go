package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FieldResponse is one answered field inside a submission. Stored inside
// Response.FieldResponses as JSON rather than as rows of their own.
type FieldResponse struct {
	FieldID  uint   `json:"fieldId"`
	Response string `json:"response"`
}

type Response struct {
	gorm.Model

	FormID         uint           `gorm:"not null;index"`
	FieldResponses datatypes.JSON `gorm:"type:jsonb"`
	SubmittedAt    time.Time      `gorm:"not null;index"`
	// UserID is set when the submitter carried a valid session; anonymous
	// submissions leave it null.
	UserID *uint `gorm:"index"`

	// Relationships
	Form Form `gorm:"foreignKey:FormID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
