package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sharedFormPayload struct {
	Form   formPayload    `json:"form"`
	Fields []fieldPayload `json:"fields"`
}

func createShareLink(t *testing.T, r *gin.Engine, cookie *http.Cookie, formID uint) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, fmt.Sprintf("/share/form/%d", formID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, "create share link failed: %s", w.Body.String())

	var link struct {
		ShareID string `json:"shareId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &link))
	require.Len(t, link.ShareID, 10)

	return link.ShareID
}

func TestCreateShareLinkIdempotent(t *testing.T) {
	r := setupServer(t)
	cookie := signUp(t, r, "Alice", "alice")

	formID := createForm(t, r, cookie, "Feedback Survey")

	first := createShareLink(t, r, cookie, formID)
	second := createShareLink(t, r, cookie, formID)

	assert.Equal(t, first, second, "a second request must return the existing token")
}

func TestGetSharedFormPublic(t *testing.T) {
	r := setupServer(t)
	cookie := signUp(t, r, "Alice", "alice")

	formID := createForm(t, r, cookie, "Feedback Survey")
	createField(t, r, cookie, formID, map[string]any{
		"label": "Your name", "type": "text", "required": true,
	})
	createField(t, r, cookie, formID, map[string]any{
		"label": "Rating", "type": "dropdown", "options": []string{"1", "2", "3"},
	})

	shareID := createShareLink(t, r, cookie, formID)

	// Fetched without any session.
	w, env := doJSON(t, r, http.MethodGet, "/share/"+shareID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var shared sharedFormPayload
	require.NoError(t, json.Unmarshal(env.Data, &shared))
	assert.Equal(t, "Feedback Survey", shared.Form.Title)
	require.Len(t, shared.Fields, 2)
	assert.Equal(t, "Your name", shared.Fields[0].Label)
	assert.Equal(t, []string{"1", "2", "3"}, shared.Fields[1].Options)
}

func TestGetSharedFormUnknownToken(t *testing.T) {
	r := setupServer(t)

	w, env := doJSON(t, r, http.MethodGet, "/share/nosuchtoken", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Share link not found or invalid", env.Message)
}

func TestDeleteShareLink(t *testing.T) {
	r := setupServer(t)
	alice := signUp(t, r, "Alice", "alice")
	bob := signUp(t, r, "Bob", "bob")

	formID := createForm(t, r, alice, "Feedback Survey")
	shareID := createShareLink(t, r, alice, formID)

	w, _ := doJSON(t, r, http.MethodDelete, "/share/"+shareID, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/share/"+shareID, nil, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/share/"+shareID, nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/share/"+shareID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A revoked form can be shared again under a fresh token.
	fresh := createShareLink(t, r, alice, formID)
	assert.NotEmpty(t, fresh)
}

func TestCheckShareLink(t *testing.T) {
	r := setupServer(t)
	cookie := signUp(t, r, "Alice", "alice")

	formID := createForm(t, r, cookie, "Feedback Survey")

	w, env := doJSON(t, r, http.MethodGet, fmt.Sprintf("/share/form/%d", formID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No share link found for this form", env.Message)
	assert.Empty(t, env.Data)

	shareID := createShareLink(t, r, cookie, formID)

	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/share/form/%d", formID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var link struct {
		ShareID string `json:"shareId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &link))
	assert.Equal(t, shareID, link.ShareID)
}
