package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/services"
	"github.com/edukta/backend/internal/middleware"
	"github.com/edukta/backend/internal/pkg/apperrors"
)

// DocumentController handles CV upload endpoints.
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// UploadCV handles POST /documents/student/:id/cv. Students may only
// upload their own CV.
func (ctrl *DocumentController) UploadCV(c *gin.Context) {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	role, _ := middleware.CurrentUserRole(c)
	if userID != targetID && role == models.RoleStudent {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		respond(c, http.StatusBadRequest, "Missing CV file", nil)
		return
	}

	doc, err := ctrl.documentService.SaveCV(c.Request.Context(), targetID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, "CV uploaded", toDocumentResponse(doc))
}

// GetCV handles GET /documents/student/:id/cv. Students may only fetch
// their own CV.
func (ctrl *DocumentController) GetCV(c *gin.Context) {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	role, _ := middleware.CurrentUserRole(c)
	if userID != targetID && role == models.RoleStudent {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	doc, err := ctrl.documentService.GetCV(c.Request.Context(), targetID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", toDocumentResponse(doc))
}

func toDocumentResponse(doc *models.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:         doc.ID,
		UserID:     doc.UserID,
		FileName:   doc.FileName,
		MimeType:   doc.MimeType,
		URL:        doc.Path,
		UploadedAt: doc.UploadedAt,
	}
}
