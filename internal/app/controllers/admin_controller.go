package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/services"
	"github.com/edukta/backend/internal/middleware"
)

// AdminController handles admin-only endpoints.
type AdminController struct {
	adminService *services.AdminService
	authService  *services.AuthService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, authService *services.AuthService) *AdminController {
	return &AdminController{
		adminService: adminService,
		authService:  authService,
	}
}

// GetDashboardMetrics handles GET /admin/metrics
func (ctrl *AdminController) GetDashboardMetrics(c *gin.Context) {
	metrics, err := ctrl.adminService.GetDashboardMetrics(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", metrics)
}

// RegisterUser handles POST /register/student/admin, creating an account with an
// explicit role.
func (ctrl *AdminController) RegisterUser(c *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid registration payload", nil)
		return
	}

	resp, err := ctrl.authService.AdminRegister(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User registered", resp)
}
