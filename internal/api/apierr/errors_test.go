package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/auth"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"match not found", model.ErrMatchNotFound, http.StatusNotFound, CodeMatchNotFound},
		{"not owner", model.ErrNotMatchOwner, http.StatusForbidden, CodeNotMatchOwner},
		{"wrapped invalid config", fmt.Errorf("%w: total rounds must be at least 1", model.ErrInvalidConfig), http.StatusBadRequest, CodeInvalidConfig},
		{"wrapped invalid transition", fmt.Errorf("%w: match is idle", model.ErrInvalidTransition), http.StatusConflict, CodeInvalidTransition},
		{"invalid move", model.ErrInvalidMove, http.StatusBadRequest, CodeInvalidMove},
		{"invalid session", auth.ErrInvalidSession, http.StatusUnauthorized, CodeUnauthorized},
		{"invalid request", NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := toHTTPError(tt.err)
			assert.Equal(t, tt.status, he.status)
			assert.Equal(t, tt.code, he.apiError.Code)
		})
	}
}

func TestWriteError_KeepsValidationDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("%w: total rounds must be at most 10, got 12", model.ErrInvalidConfig))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, CodeInvalidConfig, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "at most 10")
}
