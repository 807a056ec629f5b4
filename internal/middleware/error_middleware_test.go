package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/apperrors"
)

func TestHandleAPIError_MapsErrorsToStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation failure",
			err:        apperrors.ErrValidationFailed,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL_001",
		},
		{
			name:       "wrapped validation failure",
			err:        fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL_001",
		},
		{
			name:       "not found",
			err:        apperrors.ErrFacultyNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "RES_001",
		},
		{
			name:       "already exists",
			err:        apperrors.ErrFacultyAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   "RES_002",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SRV_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(resp)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/faculty", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, resp.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleAPIError_HidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/faculty", nil)

	HandleAPIError(c, errors.New("pq: relation \"faculty\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "relation")
}
