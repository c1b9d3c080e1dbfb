package services

import (
	"context"
	"time"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/logger"
)

// CertificateService handles certificate emission and lookup.
type CertificateService struct {
	certRepo       repositories.ICertificateRepository
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
	userRepo       repositories.IUserRepository
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(
	certRepo repositories.ICertificateRepository,
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	userRepo repositories.IUserRepository,
) *CertificateService {
	return &CertificateService{
		certRepo:       certRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
	}
}

// Issue emits a certificate for a student on a course. The student must be
// enrolled, and at most one certificate exists per course and student.
func (s *CertificateService) Issue(ctx context.Context, courseID, studentID int64) (*models.Certificate, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.HasEnrollment(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrStudentNotEnrolled
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	teacherName := ""
	if course.TeacherName != nil {
		teacherName = *course.TeacherName
	}

	cert := &models.Certificate{
		CourseID:     courseID,
		StudentID:    studentID,
		Name:         course.Name,
		Hours:        course.Hours,
		DateEmission: time.Now(),
		TeacherName:  teacherName,
		StudentName:  student.Name + " " + student.Surname,
	}

	id, err := s.certRepo.Create(ctx, cert)
	if err != nil {
		return nil, err
	}
	cert.ID = id

	if err := s.enrollmentRepo.MarkCertificate(ctx, courseID, studentID); err != nil {
		logger.Warn().Err(err).Int64("courseID", courseID).Int64("studentID", studentID).
			Msg("Certificate issued but enrollment flag not updated")
	}

	return cert, nil
}

// GetByID returns a certificate by ID.
func (s *CertificateService) GetByID(ctx context.Context, id int64) (*models.Certificate, error) {
	return s.certRepo.GetByID(ctx, id)
}

// GetByStudent returns all certificates issued to a student.
func (s *CertificateService) GetByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	if _, err := s.userRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.certRepo.GetByStudent(ctx, studentID)
}
