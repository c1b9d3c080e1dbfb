package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/pkg/apperrors"
)

func TestIssueCertificate(t *testing.T) {
	teacherName := "Tomás Ruiz"
	courseRepo := &fakeCourseRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id, Name: "Go Avanzado", Hours: 40, TeacherName: &teacherName}, nil
		},
	}
	enrollmentRepo := &fakeEnrollmentRepo{
		hasEnrollmentFn: func(ctx context.Context, courseID, studentID int64) (bool, error) {
			return true, nil
		},
	}
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Ana", Surname: "Gómez", RoleID: models.RoleStudent}, nil
		},
	}
	var created *models.Certificate
	certRepo := &fakeCertificateRepo{
		createFn: func(ctx context.Context, cert *models.Certificate) (int64, error) {
			created = cert
			return 77, nil
		},
	}

	svc := NewCertificateService(certRepo, courseRepo, enrollmentRepo, userRepo)

	cert, err := svc.Issue(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(77), cert.ID)
	assert.Equal(t, "Go Avanzado", cert.Name)
	assert.Equal(t, 40, cert.Hours)
	assert.Equal(t, "Tomás Ruiz", cert.TeacherName)
	assert.Equal(t, "Ana Gómez", cert.StudentName)
	assert.False(t, cert.DateEmission.IsZero())
	require.NotNil(t, created)
}

func TestIssueCertificateCourseNotFound(t *testing.T) {
	svc := NewCertificateService(&fakeCertificateRepo{}, &fakeCourseRepo{}, &fakeEnrollmentRepo{}, &fakeUserRepo{})

	_, err := svc.Issue(context.Background(), 99, 2)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestIssueCertificateStudentNotEnrolled(t *testing.T) {
	courseRepo := &fakeCourseRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id, Name: "Go Avanzado", Hours: 40}, nil
		},
	}
	svc := NewCertificateService(&fakeCertificateRepo{}, courseRepo, &fakeEnrollmentRepo{}, &fakeUserRepo{})

	_, err := svc.Issue(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotEnrolled)
}

func TestIssueCertificateDuplicate(t *testing.T) {
	courseRepo := &fakeCourseRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id, Name: "Go Avanzado", Hours: 40}, nil
		},
	}
	enrollmentRepo := &fakeEnrollmentRepo{
		hasEnrollmentFn: func(ctx context.Context, courseID, studentID int64) (bool, error) {
			return true, nil
		},
	}
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Ana", Surname: "Gómez"}, nil
		},
	}
	certRepo := &fakeCertificateRepo{
		createFn: func(ctx context.Context, cert *models.Certificate) (int64, error) {
			return 0, apperrors.ErrCertificateExists
		},
	}

	svc := NewCertificateService(certRepo, courseRepo, enrollmentRepo, userRepo)

	_, err := svc.Issue(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrCertificateExists)
}
