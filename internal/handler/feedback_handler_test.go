package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedback_CreateThenRejectOutOfRange(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/feedback", `{"comment":"Aplikasi sangat membantu","rating":4}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Aplikasi sangat membantu", data["comment"])
	assert.EqualValues(t, 4, data["rating"])

	w = doJSON(r, http.MethodPost, "/api/feedback", `{"comment":"Aplikasi sangat membantu","rating":5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "error", body["status"])
}

func TestFeedback_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/feedback", `{"rating":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/feedback", `{"comment":"bagus"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedback_ListNewestFirst(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/feedback", `{"comment":"pertama","rating":3}`).Code)
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/feedback", `{"comment":"kedua","rating":4}`).Code)

	w := doJSON(r, http.MethodGet, "/api/feedback", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	list := body["data"].([]interface{})
	assert.Len(t, list, 2)
}
