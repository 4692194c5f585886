package models

import (
	"time"

	"gorm.io/gorm"
)

type Deck struct {
	gorm.Model

	Title string `gorm:"not null"`
	// NumberOfCards is a denormalized count of the deck's cards, updated on
	// each card insert/delete.
	NumberOfCards int       `gorm:"not null;default:0"`
	Date          time.Time `gorm:"not null;index"`
	UserID        uint      `gorm:"not null;index"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Cards []Card `gorm:"foreignKey:DeckID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
