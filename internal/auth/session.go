package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/deckform/deckform/db"
	"github.com/deckform/deckform/internal/models"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const (
	SessionCookieName = "deckform_session"

	sessionTokenLen = 40
	sessionTTL      = 30 * 24 * time.Hour
)

var ErrSessionInvalid = errors.New("session invalid or expired")

// CreateSession issues a new server-side session for the user and returns it.
func CreateSession(userID uint) (*models.Session, error) {
	token, err := gonanoid.New(sessionTokenLen)

	if err != nil {
		return nil, err
	}

	session := models.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	if err := db.DB.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// ValidateSession resolves a cookie token to a session and its user. Expired
// sessions are deleted on sight. Sessions past their half-life get their
// expiry pushed out, matching the sliding-window behavior of the session
// libraries this replaces.
func ValidateSession(token string) (*models.Session, *models.User, error) {
	if token == "" {
		return nil, nil, ErrSessionInvalid
	}

	var session models.Session

	if err := db.DB.Where("id = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionInvalid
		}
		return nil, nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		db.DB.Delete(&models.Session{}, "id = ?", session.ID)
		return nil, nil, ErrSessionInvalid
	}

	if time.Until(session.ExpiresAt) < sessionTTL/2 {
		session.ExpiresAt = time.Now().Add(sessionTTL)
		db.DB.Model(&models.Session{}).Where("id = ?", session.ID).Update("expires_at", session.ExpiresAt)
	}

	var user models.User

	if err := db.DB.First(&user, session.UserID).Error; err != nil {
		return nil, nil, ErrSessionInvalid
	}

	return &session, &user, nil
}

// InvalidateSession deletes the session server-side.
func InvalidateSession(token string) error {
	return db.DB.Delete(&models.Session{}, "id = ?", token).Error
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}

// SetSessionCookie writes the HTTP-only session cookie on the response.
func SetSessionCookie(ctx *gin.Context, token string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		Secure:   secureCookies(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secureCookies(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadSessionToken extracts the session token from the request cookie, or ""
// when absent.
func ReadSessionToken(ctx *gin.Context) string {
	token, err := ctx.Cookie(SessionCookieName)

	if err != nil {
		return ""
	}

	return token
}
