package crud

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("resource owned by another user")
)

// FirstOwned loads a record by primary key and enforces the ownership rule in
// one place: absent records surface ErrNotFound, records owned by someone
// other than userID surface ErrForbidden. ownerID extracts the owning user's
// id from the loaded record.
func FirstOwned[T any](tx *gorm.DB, id uint, userID uint, ownerID func(*T) uint) (*T, error) {
	var record T

	if err := tx.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ownerID(&record) != userID {
		return nil, ErrForbidden
	}

	return &record, nil
}
