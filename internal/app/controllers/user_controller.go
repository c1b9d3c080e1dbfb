package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/services"
	"github.com/edukta/backend/internal/middleware"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/helpers"
)

// UserController handles user profile endpoints.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUserByID handles GET /users/:id. Students may only read their own
// profile; admins and teachers may read anyone's.
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if !ctrl.canAccess(c, id) {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	user, err := ctrl.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", dto.FromUser(user))
}

// UpdateUser handles PUT /users/:id. Users update their own profile; admins
// may update anyone's.
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	role, _ := middleware.CurrentUserRole(c)
	if userID != id && role != models.RoleAdmin {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid profile payload", nil)
		return
	}

	user, err := ctrl.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Profile updated", dto.FromUser(user))
}

// GetStudentProfile handles GET /students/:id/profile
func (ctrl *UserController) GetStudentProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if !ctrl.canAccess(c, id) {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	profile, err := ctrl.userService.StudentProfile(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", profile)
}

// ListTeachers handles GET /teachers
func (ctrl *UserController) ListTeachers(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	teachers, err := ctrl.userService.ListTeachers(c.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", teachers)
}

// ListStudents handles GET /students
func (ctrl *UserController) ListStudents(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	students, err := ctrl.userService.ListStudents(c.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", students)
}

func (ctrl *UserController) canAccess(c *gin.Context, targetID int64) bool {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return false
	}
	if userID == targetID {
		return true
	}
	role, ok := middleware.CurrentUserRole(c)
	return ok && (role == models.RoleAdmin || role == models.RoleTeacher)
}
