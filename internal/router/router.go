package router

import (
	"time"

	"github.com/deckform/deckform/internal/handlers"
	"github.com/deckform/deckform/internal/middleware"
	"github.com/deckform/deckform/internal/types"
	"github.com/deckform/deckform/internal/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	validation.Register()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Session resolution runs on every request; routes opt into the guard.
	r.Use(middleware.Sessions())

	r.GET("/health", handlers.HealthCheck)

	r.POST("/sign-up", handlers.SignUp)
	r.POST("/sign-in", handlers.SignIn)
	r.POST("/sign-out", handlers.SignOut)
	r.POST("/validate-session", handlers.ValidateSession)

	decks := r.Group("/decks", middleware.RequireAuth())
	{
		decks.GET("", handlers.ListDecks)
		decks.POST("", handlers.CreateDeck)
		decks.GET("/:deck_id", handlers.GetDeck)
		decks.PATCH("/:deck_id", handlers.UpdateDeck)
		decks.DELETE("/:deck_id", handlers.DeleteDeck)

		decks.GET("/:deck_id/cards", handlers.ListCards)
		decks.POST("/:deck_id/cards", handlers.CreateCard)
		decks.GET("/:deck_id/cards/:card_id", handlers.GetCard)
		decks.PATCH("/:deck_id/cards/:card_id", handlers.UpdateCard)
		decks.DELETE("/:deck_id/cards/:card_id", handlers.DeleteCard)
	}

	forms := r.Group("/forms", middleware.RequireAuth())
	{
		forms.GET("", handlers.ListForms)
		forms.POST("", handlers.CreateForm)
		forms.GET("/:form_id", handlers.GetForm)
		forms.PATCH("/:form_id", handlers.UpdateForm)
		forms.DELETE("/:form_id", handlers.DeleteForm)

		forms.GET("/:form_id/fields", handlers.ListFields)
		forms.POST("/:form_id/fields", handlers.CreateField)
		forms.GET("/:form_id/fields/:field_id", handlers.GetField)
		forms.PATCH("/:form_id/fields/:field_id", handlers.UpdateField)
		forms.DELETE("/:form_id/fields/:field_id", handlers.DeleteField)
	}

	// Response creation is the public share target; reads and deletes are
	// owner-only.
	r.POST("/responses", handlers.CreateResponse)
	r.GET("/responses/form/:form_id", middleware.RequireAuth(), handlers.ListFormResponses)
	r.GET("/responses/:response_id", middleware.RequireAuth(), handlers.GetResponse)
	r.DELETE("/responses/:response_id", middleware.RequireAuth(), handlers.DeleteResponse)

	r.POST("/share/form/:form_id", middleware.RequireAuth(), handlers.CreateShareLink)
	r.GET("/share/form/:form_id", middleware.RequireAuth(), handlers.CheckShareLink)
	r.GET("/share/:share_id", handlers.GetSharedForm)
	r.DELETE("/share/:share_id", middleware.RequireAuth(), handlers.DeleteShareLink)

	return r
}
