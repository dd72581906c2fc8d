package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/healthchecker", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	RespondWithMessage(rec, req, "All Ok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, StatusSuccess, body.Status)
	assert.Equal(t, "All Ok", body.Message)
	assert.Equal(t, GetTraceID(req.Context()), body.TraceID)
}

func TestRespondWithErrorAndLogRedactsMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/create_flash", nil)
	rec := httptest.NewRecorder()

	err := errors.New("dial postgres://quiz:hunter2@db:5432/quiz failed")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, StatusFail, body.Status)
	assert.Contains(t, body.Message, "dial postgres://")
	assert.NotContains(t, body.Message, "hunter2")
	assert.Empty(t, body.TraceID)
}

func TestRespondWithErrorAndLogNilError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()

	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, nil)

	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "an unexpected error occurred", body.Message)
}
