package types

import (
	"time"

	"github.com/deckform/deckform/internal/models"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

// ValidationIssue is one schema violation inside a 400 response.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// PageMeta accompanies every paginated list.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	TotalCount int64 `json:"totalCount"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type DeckResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	NumberOfCards int       `json:"numberOfCards"`
	Date          time.Time `json:"date"`
	UserID        uint      `json:"userId"`
}

type CardResponse struct {
	ID     uint      `json:"id"`
	Front  string    `json:"front"`
	Back   string    `json:"back"`
	Date   time.Time `json:"date"`
	DeckID uint      `json:"deckId"`
}

type FormResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	NumberOfFields int       `json:"numberOfFields"`
	Date           time.Time `json:"date"`
	UserID         uint      `json:"userId"`
}

type FieldResponse struct {
	ID       uint      `json:"id"`
	Label    string    `json:"label"`
	Type     string    `json:"type"`
	Options  []string  `json:"options"`
	Required bool      `json:"required"`
	Date     time.Time `json:"date"`
	FormID   uint      `json:"formId"`
}

// SharedFormResponse is the public payload behind a share link: the form
// definition plus its fields, readable without authentication.
type SharedFormResponse struct {
	Form   FormResponse    `json:"form"`
	Fields []FieldResponse `json:"fields"`
}

type ShareLinkResponse struct {
	ShareID string `json:"shareId"`
}

// AnsweredField is one field answer inside a submission, enriched with the
// field's label for display.
type AnsweredField struct {
	FieldID  uint   `json:"fieldId"`
	Response string `json:"response"`
	Label    string `json:"label,omitempty"`
}

type SubmissionResponse struct {
	ID             uint            `json:"id"`
	FormID         uint            `json:"formId"`
	FieldResponses []AnsweredField `json:"fieldResponses"`
	SubmittedAt    time.Time       `json:"submittedAt"`
	UserID         *uint           `json:"userId,omitempty"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{ID: user.ID, Name: user.Name, Username: user.Username}
}

func NewDeckResponse(deck *models.Deck) DeckResponse {
	return DeckResponse{
		ID:            deck.ID,
		Title:         deck.Title,
		NumberOfCards: deck.NumberOfCards,
		Date:          deck.Date,
		UserID:        deck.UserID,
	}
}

func NewCardResponse(card *models.Card) CardResponse {
	return CardResponse{
		ID:     card.ID,
		Front:  card.Front,
		Back:   card.Back,
		Date:   card.Date,
		DeckID: card.DeckID,
	}
}

func NewFormResponse(form *models.Form) FormResponse {
	return FormResponse{
		ID:             form.ID,
		Title:          form.Title,
		NumberOfFields: form.NumberOfFields,
		Date:           form.Date,
		UserID:         form.UserID,
	}
}
