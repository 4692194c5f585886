package handlers

import (
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

type CreateDeckRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100,titlechars"`
}

type UpdateDeckRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=100,titlechars"`
}

func deckOwner(deck *models.Deck) uint { return deck.UserID }

func ListDecks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	q, ok := bindListQuery(ctx)

	if !ok {
		return
	}

	decks, meta, err := crud.List[models.Deck](func() *gorm.DB {
		tx := db.DB.Model(&models.Deck{}).Where("user_id = ?", userID)
		return crud.ApplySearch(tx, q.Search, "title")
	}, q, "date")

	if err != nil {
		log.Printf("Failed to list decks: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to retrieve decks")
		return
	}

	data := make([]types.DeckResponse, 0, len(decks))

	for i := range decks {
		data = append(data, types.NewDeckResponse(&decks[i]))
	}

	respondList(ctx, "Decks retrieved successfully", data, meta)
}

func GetDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	deckID, ok := paramUint(ctx, "deck_id")

	if !ok {
		return
	}

	deck, err := crud.FirstOwned(db.DB, deckID, userID, deckOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Deck not found", "Unauthorized to fetch this deck")
		return
	}

	respond(ctx, http.StatusOK, "Deck retrieved successfully", types.NewDeckResponse(deck))
}

func CreateDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateDeckRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	deck := models.Deck{
		Title:         req.Title,
		NumberOfCards: 0,
		Date:          time.Now(),
		UserID:        userID,
	}

	if err := db.DB.Create(&deck).Error; err != nil {
		log.Printf("Failed to create deck: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to create deck")
		return
	}

	respond(ctx, http.StatusCreated, "Deck created successfully", types.NewDeckResponse(&deck))
}

func UpdateDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	deckID, ok := paramUint(ctx, "deck_id")

	if !ok {
		return
	}

	var req UpdateDeckRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	deck, err := crud.FirstOwned(db.DB, deckID, userID, deckOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Deck not found", "Unauthorized to update this deck")
		return
	}

	if req.Title != nil {
		deck.Title = *req.Title
	}

	if err := db.DB.Save(deck).Error; err != nil {
		log.Printf("Failed to update deck: %v", err)
		respondError(ctx, http.StatusInternalServerError, "Failed to update deck")
		return
	}

	respond(ctx, http.StatusOK, "Deck updated successfully", types.NewDeckResponse(deck))
}

func DeleteDeck(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	deckID, ok := paramUint(ctx, "deck_id")

	if !ok {
		return
	}

	deck, err := crud.FirstOwned(db.DB, deckID, userID, deckOwner)

	if err != nil {
		respondOwnershipError(ctx, err, "Deck not found", "Unauthorized to delete this deck")
		return
	}

	// Cascade emulated here; the storage-level constraint is not relied on.
	if err := db.DB.Where("deck_id = ?", deck.ID).Delete(&models.Card{}).Error; err != nil {
		log.Printf("Failed to delete cards for deck %d: %v", deck.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete deck")
		return
	}

	if err := db.DB.Delete(deck).Error; err != nil {
		log.Printf("Failed to delete deck %d: %v", deck.ID, err)
		respondError(ctx, http.StatusInternalServerError, "Failed to delete deck")
		return
	}

	respond(ctx, http.StatusOK, "Deck deleted successfully", types.NewDeckResponse(deck))
}
