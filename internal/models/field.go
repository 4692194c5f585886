package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Field input types.
const (
	FieldTypeText           = "text"
	FieldTypeMultipleChoice = "multiple_choice"
	FieldTypeCheckbox       = "checkbox"
	FieldTypeDropdown       = "dropdown"
)

type Field struct {
	gorm.Model

	Label string `gorm:"not null"`
	Type  string `gorm:"not null"`
	// Options is a JSON array of choice strings; empty for text fields.
	Options  datatypes.JSON `gorm:"type:jsonb"`
	Required bool           `gorm:"not null;default:false"`
	Date     time.Time      `gorm:"not null;index"`
	// FormID is immutable after creation.
	FormID uint `gorm:"not null;index"`

	// Relationships
	Form Form `gorm:"foreignKey:FormID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
