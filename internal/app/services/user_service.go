package services

import (
	"context"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/pkg/auth"
	"github.com/edukta/backend/internal/pkg/helpers"
	"github.com/edukta/backend/internal/pkg/logger"
)

// UserService handles user profile operations.
type UserService struct {
	userRepo       repositories.IUserRepository
	enrollmentRepo repositories.IEnrollmentRepository
	tokenRepo      repositories.ITokenRepository
	encrypter      *auth.Encrypter
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	tokenRepo repositories.ITokenRepository,
	encrypter *auth.Encrypter,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		tokenRepo:      tokenRepo,
		encrypter:      encrypter,
	}
}

// GetByID returns a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update applies a profile update and returns the updated user. When the
// payload carries a new password, every refresh token of the user is
// revoked so stolen sessions cannot outlive the change.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Surname = req.Surname
	user.Phone = req.Phone
	user.Degree = req.Degree

	passwordChanged := false
	if req.Password != nil && *req.Password != "" {
		hash, err := s.encrypter.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
		passwordChanged = true
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if passwordChanged {
		if err := s.tokenRepo.RevokeAllForUser(ctx, id); err != nil {
			logger.Warn().Err(err).Int64("userID", id).Msg("Failed to revoke sessions after password change")
		}
	}

	return user, nil
}

// StudentProfile returns a student with the courses assigned to them.
func (s *UserService) StudentProfile(ctx context.Context, studentID int64) (*dto.StudentProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.GetCoursesByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courses := make([]dto.StudentCourseEntry, 0, len(enrollments))
	for _, e := range enrollments {
		courses = append(courses, dto.StudentCourseEntry{
			Course:         *e.Course,
			HasCertificate: e.HasCertificate,
			Progress:       e.Progress,
		})
	}

	return &dto.StudentProfileResponse{
		User:    dto.FromUser(user),
		Courses: courses,
	}, nil
}

// ListTeachers returns one page of teacher accounts.
func (s *UserService) ListTeachers(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	return s.listByRole(ctx, models.RoleTeacher, page, size)
}

// ListStudents returns one page of student accounts.
func (s *UserService) ListStudents(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	return s.listByRole(ctx, models.RoleStudent, page, size)
}

func (s *UserService) listByRole(ctx context.Context, role models.Role, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, err := s.userRepo.ListByRole(ctx, role, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.CountByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.FromUser(u))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}
