package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/deckform/deckform/db"
	"github.com/deckform/deckform/internal/crud"
	"github.com/deckform/deckform/internal/models"
	"github.com/deckform/deckform/internal/types"
	"github.com/deckform/deckform/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCardRequest struct {
	Front string `json:"front" binding:"required,min=1,max=500"`
	Back  string `json:"back" binding:"required,min=1,max=1000"`
}

type UpdateCardRequest struct {
	Front *string `json:"front" binding:"omitempty,min=1,max=500"`
	Back  *string `json:"back" binding:"omitempty,min=1,max=1000"`
}

// ownedDeck runs the shared parent guard for every card route: the deck must
// exist (404) and belong to the caller (403) before any card is touched.
func ownedDeck(ctx *gin.Context, action string) (*models.Deck, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}

	deckID, ok := paramUint(ctx, "deck_id")

	if !ok {
		return nil, false
	}

	deck, err := crud.FirstOwned(db.DB, deckID, userID, deckOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Deck not found", "Unauthorized to "+action+" cards in this deck")
		return nil, false
	}

	return deck, true
}

func ListCards(ctx *gin.Context) {
	deck, ok := ownedDeck(ctx, "fetch")

	if !ok {
		return
	}

	q, ok := bindListQuery(ctx)

	if !ok {
		return
	}

	cards, meta, err := crud.List[models.Card](func() *gorm.DB {
		tx := db.DB.Model(&models.Card{}).Where("deck_id = ?", deck.ID)
		return crud.ApplySearch(tx, q.Search, "front", "back")
	}, q, "date")

	if err != nil {
		log.Printf("Failed to list cards: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to retrieve cards")
		return
	}

	data := make([]types.CardResponse, 0, len(cards))

	for i := range cards {
		data = append(data, types.NewCardResponse(&cards[i]))
	}

	respondList(ctx, "Cards retrieved successfully", data, meta)
}

func GetCard(ctx *gin.Context) {
	deck, ok := ownedDeck(ctx, "fetch")

	if !ok {
		return
	}

	cardID, ok := paramUint(ctx, "card_id")

	if !ok {
		return
	}

	var card models.Card

	if err := db.DB.Where("id = ? AND deck_id = ?", cardID, deck.ID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Card not found")
		} else {
			log.Printf("Failed to fetch card: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Failed to retrieve card")
		}
		return
	}

	respond(ctx, http.StatusOK, "Card retrieved successfully", types.NewCardResponse(&card))
}

func CreateCard(ctx *gin.Context) {
	deck, ok := ownedDeck(ctx, "add")

	if !ok {
		return
	}

	var req CreateCardRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	card := models.Card{
		Front:  req.Front,
		Back:   req.Back,
		Date:   time.Now(),
		DeckID: deck.ID,
	}

	if err := db.DB.Create(&card).Error; err != nil {
		log.Printf("Failed to create card: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to create card")
		return
	}

	// Separate statement from the insert; not transactional, so the count can
	// drift under concurrent writers.
	if err := db.DB.Model(&models.Deck{}).Where("id = ?", deck.ID).
		Update("number_of_cards", deck.NumberOfCards+1).Error; err != nil {
		log.Printf("Failed to update card count for deck %d: %v", deck.ID, err)
	}

	respond(ctx, http.StatusCreated, "Card created successfully", types.NewCardResponse(&card))
}

func UpdateCard(ctx *gin.Context) {
	deck, ok := ownedDeck(ctx, "edit")

	if !ok {
		return
	}

	cardID, ok := paramUint(ctx, "card_id")

	if !ok {
		return
	}

	var req UpdateCardRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	var card models.Card

	if err := db.DB.Where("id = ? AND deck_id = ?", cardID, deck.ID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Card not found")
		} else {
			log.Printf("Failed to fetch card: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Failed to retrieve card")
		}
		return
	}

	if req.Front != nil {
		card.Front = *req.Front
	}

	if req.Back != nil {
		card.Back = *req.Back
	}

	if err := db.DB.Save(&card).Error; err != nil {
		log.Printf("Failed to update card: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to update card")
		return
	}

	respond(ctx, http.StatusOK, "Card updated successfully", types.NewCardResponse(&card))
}

func DeleteCard(ctx *gin.Context) {
	deck, ok := ownedDeck(ctx, "delete")

	if !ok {
		return
	}

	cardID, ok := paramUint(ctx, "card_id")

	if !ok {
		return
	}

	var card models.Card

	if err := db.DB.Where("id = ? AND deck_id = ?", cardID, deck.ID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Card not found")
		} else {
			log.Printf("Failed to fetch card: %v", err)
			respondError(ctx, http.StatusInternalServerError, "Failed to retrieve card")
		}
		return
	}

	if err := db.DB.Delete(&card).Error; err != nil {
		log.Printf("Failed to delete card: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete card")
		return
	}

	if err := db.DB.Model(&models.Deck{}).Where("id = ?", deck.ID).
		Update("number_of_cards", deck.NumberOfCards-1).Error; err != nil {
		log.Printf("Failed to update card count for deck %d: %v", deck.ID, err)
	}

	respond(ctx, http.StatusOK, "Card deleted successfully", types.NewCardResponse(&card))
}
