package dto

import "github.com/edukta/backend/internal/app/models"

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Surname string      `json:"surname"`
	Email   string      `json:"email"`
	RoleID  models.Role `json:"roleId"`
	HasCV   bool        `json:"hasCV"`
	Phone   *string     `json:"phone,omitempty"`
	Degree  *string     `json:"degree,omitempty"`
}

// FromUser maps a user model to its API shape.
func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		RoleID:  u.RoleID,
		HasCV:   u.HasCV,
		Phone:   u.Phone,
		Degree:  u.Degree,
	}
}

// UpdateUserRequest represents a profile update payload. A non-empty
// password replaces the stored hash and signs the user out everywhere else.
type UpdateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Surname  string  `json:"surname" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
	Degree   *string `json:"degree,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// StudentCourseEntry is one course in a student profile, with the
// certificate/progress projection from the enrollment row.
type StudentCourseEntry struct {
	Course         models.Course `json:"course"`
	HasCertificate bool          `json:"hasCertificate"`
	Progress       int           `json:"progress"`
}

// StudentProfileResponse is the student profile view: the user plus the
// courses assigned to them.
type StudentProfileResponse struct {
	User    UserResponse         `json:"user"`
	Courses []StudentCourseEntry `json:"courses"`
}
