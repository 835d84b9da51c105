package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteOK(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteOK(rec, map[string]string{"analysis": "text"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"analysis":"text"}}`, rec.Body.String())
}

func TestWriteBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteBadRequest(rec, "missing transcript", map[string]interface{}{"field": "transcript"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"missing transcript","details":{"field":"transcript"}}`, rec.Body.String())
}

func TestWriteInternalServerErrorDefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteInternalServerError(rec, "")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestWriteJSONNilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, http.StatusNoContent, nil)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
