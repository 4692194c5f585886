package models

import (
	"time"

	"gorm.io/gorm"
)

type Card struct {
	gorm.Model

	Front string `gorm:"not null"`
	Back  string `gorm:"not null"`
	Date  time.Time `gorm:"not null;index"`
	// DeckID is immutable after creation.
	DeckID uint `gorm:"not null;index"`

	// Relationships
	Deck Deck `gorm:"foreignKey:DeckID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
