package models

import "time"

// ShareLink grants public read access to one form. ShareID is the unguessable
// token in the public URL; at most one link exists per form. No soft delete:
// a revoked link must free its form_id slot for a future link.
type ShareLink struct {
	ID        uint   `gorm:"primaryKey"`
	FormID    uint   `gorm:"not null;uniqueIndex"`
	ShareID   string `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time

	// Relationships
	Form Form `gorm:"foreignKey:FormID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
