package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukta/backend/internal/pkg/apperrors"
)

func performError(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIErrorMappings(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid student ids", apperrors.ErrInvalidStudentIDs, 400, "El formato de studentIds no es válido"},
		{"course not found", apperrors.ErrCourseNotFound, 404, "Curso no encontrado"},
		{"wrong password", apperrors.ErrWrongPassword, 400, "Wrong password"},
		{"user not found", apperrors.ErrUserNotFound, 400, "User not found"},
		{"no valid students", apperrors.ErrNoValidStudents, 422, "No valid students to assign"},
		{"email exists", apperrors.ErrEmailAlreadyExists, 409, "Email already exists"},
		{"certificate exists", apperrors.ErrCertificateExists, 409, "Certificate already issued"},
		{"token expired", apperrors.ErrTokenExpired, 401, "Token expired"},
		{"permission denied", apperrors.ErrPermissionDenied, 403, "Permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := performError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.Nil(t, body["data"])
		})
	}
}

func TestHandleAPIErrorUnknownErrorIs500(t *testing.T) {
	status, body := performError(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body["message"])
	assert.Nil(t, body["data"])
}

func TestHandleAPIErrorCustomError(t *testing.T) {
	status, body := performError(t, apperrors.NewBadRequestError("Invalid id parameter"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid id parameter", body["message"])

	status, body = performError(t, apperrors.NewResourceNotFoundError("No existe"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No existe", body["message"])

	status, body = performError(t, apperrors.NewConflictError("Duplicado"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Duplicado", body["message"])
}
