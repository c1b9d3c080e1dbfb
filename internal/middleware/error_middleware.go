package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Every error path
// emits the standard envelope with a null data field. Messages here are part
// of the API contract and consumed by the frontend, so some are localized.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		status := statusForSentinel(custom.Err)
		c.JSON(status, dto.NewAPIResponse(status, custom.Message, nil))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidStudentIDs):
		c.JSON(http.StatusBadRequest,
			dto.NewAPIResponse(http.StatusBadRequest, "El formato de studentIds no es válido", nil))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewAPIResponse(http.StatusNotFound, "Curso no encontrado", nil))
	case errors.Is(err, apperrors.ErrWrongPassword):
		c.JSON(http.StatusBadRequest,
			dto.NewAPIResponse(http.StatusBadRequest, "Wrong password", nil))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusBadRequest,
			dto.NewAPIResponse(http.StatusBadRequest, "User not found", nil))
	case errors.Is(err, apperrors.ErrNoValidStudents):
		c.JSON(http.StatusUnprocessableEntity,
			dto.NewAPIResponse(http.StatusUnprocessableEntity, "No valid students to assign", nil))
	case errors.Is(err, apperrors.ErrStudentNotEnrolled):
		c.JSON(http.StatusUnprocessableEntity,
			dto.NewAPIResponse(http.StatusUnprocessableEntity, "Student is not enrolled in this course", nil))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict,
			dto.NewAPIResponse(http.StatusConflict, "Email already exists", nil))
	case errors.Is(err, apperrors.ErrCertificateExists):
		c.JSON(http.StatusConflict,
			dto.NewAPIResponse(http.StatusConflict, "Certificate already issued", nil))
	case errors.Is(err, apperrors.ErrLessonNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewAPIResponse(http.StatusNotFound, "Lesson not found", nil))
	case errors.Is(err, apperrors.ErrCertificateNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewAPIResponse(http.StatusNotFound, "Certificate not found", nil))
	case errors.Is(err, apperrors.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewAPIResponse(http.StatusNotFound, "Document not found", nil))
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewAPIResponse(http.StatusNotFound, "Teacher not found", nil))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewAPIResponse(http.StatusNotFound, "Resource not found", nil))
	case errors.Is(err, apperrors.ErrInvalidRole):
		c.JSON(http.StatusBadRequest,
			dto.NewAPIResponse(http.StatusBadRequest, "Invalid role", nil))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest,
			dto.NewAPIResponse(http.StatusBadRequest, "Validation failed", nil))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized,
			dto.NewAPIResponse(http.StatusUnauthorized, "Token expired", nil))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized,
			dto.NewAPIResponse(http.StatusUnauthorized, "Invalid token", nil))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized,
			dto.NewAPIResponse(http.StatusUnauthorized, "Token not found", nil))
	case errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized,
			dto.NewAPIResponse(http.StatusUnauthorized, "Token revoked", nil))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewAPIResponse(http.StatusUnauthorized, "Invalid credentials", nil))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden,
			dto.NewAPIResponse(http.StatusForbidden, "Permission denied", nil))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewAPIResponse(http.StatusInternalServerError, "", nil))
	}
}

func statusForSentinel(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
