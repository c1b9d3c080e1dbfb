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

// CertificateController handles certificate endpoints.
type CertificateController struct {
	certificateService *services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService *services.CertificateService) *CertificateController {
	return &CertificateController{certificateService: certificateService}
}

// IssueCertificate handles POST /certificates
func (ctrl *CertificateController) IssueCertificate(c *gin.Context) {
	var req dto.IssueCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid certificate payload", nil)
		return
	}

	cert, err := ctrl.certificateService.Issue(c.Request.Context(), req.CourseID, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Certificate issued", cert)
}

// GetCertificateByID handles GET /certificates/:id
func (ctrl *CertificateController) GetCertificateByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	cert, err := ctrl.certificateService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", cert)
}

// GetStudentCertificates handles GET /students/:id/certificates. Students may
// only list their own certificates.
func (ctrl *CertificateController) GetStudentCertificates(c *gin.Context) {
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	role, _ := middleware.CurrentUserRole(c)
	if userID != studentID && role == models.RoleStudent {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	certs, err := ctrl.certificateService.GetByStudent(c.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", certs)
}
