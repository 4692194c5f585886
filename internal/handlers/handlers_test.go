package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deckform/deckform/db"
	"github.com/deckform/deckform/internal/auth"
	"github.com/deckform/deckform/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
	User    json.RawMessage `json:"user"`
}

type pageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}

// setupServer wires the real router against a fresh in-memory database, one
// per test.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	require.NoError(t, db.ConnectSQLite(dsn))
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope

	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}

	return w, env
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}

	t.Fatal("no session cookie in response")
	return nil
}

// signUp registers a user and returns their session cookie.
func signUp(t *testing.T, r *gin.Engine, name, username string) *http.Cookie {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/sign-up", map[string]string{
		"name":     name,
		"username": username,
		"password": "Passw0rdQ",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code, "sign-up failed: %s", w.Body.String())

	return sessionCookie(t, w)
}

func createDeck(t *testing.T, r *gin.Engine, cookie *http.Cookie, title string) uint {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/decks", map[string]string{"title": title}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, "create deck failed: %s", w.Body.String())

	var deck struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &deck))

	return deck.ID
}

func createForm(t *testing.T, r *gin.Engine, cookie *http.Cookie, title string) uint {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/forms", map[string]string{"title": title}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, "create form failed: %s", w.Body.String())

	var form struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &form))

	return form.ID
}

func decodeMeta(t *testing.T, env envelope) pageMeta {
	t.Helper()

	var meta pageMeta
	require.NoError(t, json.Unmarshal(env.Meta, &meta))

	return meta
}
