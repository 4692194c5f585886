package client

import "time"

type User struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type Deck struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	NumberOfCards int       `json:"numberOfCards"`
	Date          time.Time `json:"date"`
	UserID        uint      `json:"userId"`
}

type Card struct {
	ID     uint      `json:"id"`
	Front  string    `json:"front"`
	Back   string    `json:"back"`
	Date   time.Time `json:"date"`
	DeckID uint      `json:"deckId"`
}

type Form struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	NumberOfFields int       `json:"numberOfFields"`
	Date           time.Time `json:"date"`
	UserID         uint      `json:"userId"`
}

type Field struct {
	ID       uint      `json:"id"`
	Label    string    `json:"label"`
	Type     string    `json:"type"`
	Options  []string  `json:"options"`
	Required bool      `json:"required"`
	Date     time.Time `json:"date"`
	FormID   uint      `json:"formId"`
}

type SharedForm struct {
	Form   Form    `json:"form"`
	Fields []Field `json:"fields"`
}

type FieldAnswer struct {
	FieldID  uint   `json:"fieldId"`
	Response string `json:"response"`
	Label    string `json:"label,omitempty"`
}

type Submission struct {
	ID             uint          `json:"id"`
	FormID         uint          `json:"formId"`
	FieldResponses []FieldAnswer `json:"fieldResponses"`
	SubmittedAt    time.Time     `json:"submittedAt"`
	UserID         *uint         `json:"userId,omitempty"`
}
