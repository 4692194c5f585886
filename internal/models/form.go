package models

import (
	"time"

	"gorm.io/gorm"
)

type Form struct {
	gorm.Model

	Title string `gorm:"not null"`
	// NumberOfFields is a denormalized count of the form's fields, updated on
	// each field insert/delete.
	NumberOfFields int       `gorm:"not null;default:0"`
	Date           time.Time `gorm:"not null;index"`
	UserID         uint      `gorm:"not null;index"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Fields    []Field    `gorm:"foreignKey:FormID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Responses []Response `gorm:"foreignKey:FormID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
