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

type answerPayload struct {
	FieldID  uint   `json:"fieldId"`
	Response string `json:"response"`
	Label    string `json:"label"`
}

type submissionPayloadT struct {
	ID             uint            `json:"id"`
	FormID         uint            `json:"formId"`
	FieldResponses []answerPayload `json:"fieldResponses"`
	UserID         *uint           `json:"userId"`
}

// surveyForm builds a form with a required name field and an optional rating
// field, returning the form id and both field ids.
func surveyForm(t *testing.T, r *gin.Engine, cookie *http.Cookie) (uint, uint, uint) {
	t.Helper()

	formID := createForm(t, r, cookie, "Feedback Survey")

	name := createField(t, r, cookie, formID, map[string]any{
		"label": "Your name", "type": "text", "required": true,
	})
	rating := createField(t, r, cookie, formID, map[string]any{
		"label": "Rating", "type": "dropdown", "options": []string{"1", "2", "3"},
	})

	return formID, name.ID, rating.ID
}

func submit(t *testing.T, r *gin.Engine, cookie *http.Cookie, formID uint, answers []map[string]any) (*envelope, int) {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/responses", map[string]any{
		"formId":         formID,
		"fieldResponses": answers,
	}, cookie)

	return &env, w.Code
}

func TestSubmitResponseAnonymous(t *testing.T) {
	r := setupServer(t)
	owner := signUp(t, r, "Alice", "alice")

	formID, nameID, ratingID := surveyForm(t, r, owner)

	env, code := submit(t, r, nil, formID, []map[string]any{
		{"fieldId": nameID, "response": "Bob"},
		{"fieldId": ratingID, "response": "3"},
	})
	require.Equal(t, http.StatusCreated, code)

	var sub submissionPayloadT
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	assert.Equal(t, formID, sub.FormID)
	assert.Nil(t, sub.UserID, "anonymous submissions carry no user id")
	require.Len(t, sub.FieldResponses, 2)
	assert.Equal(t, "Bob", sub.FieldResponses[0].Response)
}

func TestSubmitResponseRecordsSignedInUser(t *testing.T) {
	r := setupServer(t)
	owner := signUp(t, r, "Alice", "alice")
	bob := signUp(t, r, "Bob", "bob")

	formID, nameID, _ := surveyForm(t, r, owner)

	env, code := submit(t, r, bob, formID, []map[string]any{
		{"fieldId": nameID, "response": "Bob"},
	})
	require.Equal(t, http.StatusCreated, code)

	var sub submissionPayloadT
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	require.NotNil(t, sub.UserID)
}

func TestSubmitResponseRequiredField(t *testing.T) {
	r := setupServer(t)
	owner := signUp(t, r, "Alice", "alice")

	formID, _, ratingID := surveyForm(t, r, owner)

	env, code := submit(t, r, nil, formID, []map[string]any{
		{"fieldId": ratingID, "response": "2"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `Required field "Your name" must be answered`, env.Message)

	// Nothing was persisted by the rejected submission.
	w, listEnv := doJSON(t, r, http.MethodGet, fmt.Sprintf("/responses/form/%d", formID), nil, owner)
	require.Equal(t, http.StatusOK, w.Code)

	var subs []submissionPayloadT
	require.NoError(t, json.Unmarshal(listEnv.Data, &subs))
	assert.Empty(t, subs)
}

func TestSubmitResponseUnknownField(t *testing.T) {
	r := setupServer(t)
	owner := signUp(t, r, "Alice", "alice")

	formID, nameID, _ := surveyForm(t, r, owner)

	env, code := submit(t, r, nil, formID, []map[string]any{
		{"fieldId": nameID, "response": "Bob"},
		{"fieldId": 9999, "response": "stray"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Field 9999 not found", env.Message)
}

func TestSubmitResponseUnknownForm(t *testing.T) {
	r := setupServer(t)

	_, code := submit(t, r, nil, 9999, []map[string]any{
		{"fieldId": 1, "response": "x"},
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListFormResponsesOwnerOnly(t *testing.T) {
	r := setupServer(t)
	alice := signUp(t, r, "Alice", "alice")
	bob := signUp(t, r, "Bob", "bob")

	formID, nameID, _ := surveyForm(t, r, alice)

	_, code := submit(t, r, nil, formID, []map[string]any{
		{"fieldId": nameID, "response": "Anon"},
	})
	require.Equal(t, http.StatusCreated, code)

	path := fmt.Sprintf("/responses/form/%d", formID)

	w, _ := doJSON(t, r, http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, path, nil, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := doJSON(t, r, http.MethodGet, path, nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	var subs []submissionPayloadT
	require.NoError(t, json.Unmarshal(env.Data, &subs))
	require.Len(t, subs, 1)

	// Answers come back enriched with field labels.
	assert.Equal(t, "Your name", subs[0].FieldResponses[0].Label)
}

func TestGetAndDeleteResponse(t *testing.T) {
	r := setupServer(t)
	alice := signUp(t, r, "Alice", "alice")
	bob := signUp(t, r, "Bob", "bob")

	formID, nameID, _ := surveyForm(t, r, alice)

	env, code := submit(t, r, nil, formID, []map[string]any{
		{"fieldId": nameID, "response": "Anon"},
	})
	require.Equal(t, http.StatusCreated, code)

	var sub submissionPayloadT
	require.NoError(t, json.Unmarshal(env.Data, &sub))

	path := fmt.Sprintf("/responses/%d", sub.ID)

	w, _ := doJSON(t, r, http.MethodGet, path, nil, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, getEnv := doJSON(t, r, http.MethodGet, path, nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched submissionPayloadT
	require.NoError(t, json.Unmarshal(getEnv.Data, &fetched))
	assert.Equal(t, sub.ID, fetched.ID)

	w, _ = doJSON(t, r, http.MethodDelete, path, nil, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, path, nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, path, nil, alice)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
