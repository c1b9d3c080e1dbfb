package services

import (
	"github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/pkg/auth"
	"github.com/edukta/backend/internal/pkg/email"
	"github.com/edukta/backend/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	UserService        *UserService
	CourseService      *CourseService
	AdminService       *AdminService
	CertificateService *CertificateService
	DocumentService    *DocumentService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	encrypter *auth.Encrypter,
	emailService email.Service,
	storage filestorage.FileStorage,
) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.TokenRepository,
			jwtService,
			encrypter,
			emailService,
		),
		UserService: NewUserService(
			repos.UserRepository,
			repos.EnrollmentRepository,
			repos.TokenRepository,
			encrypter,
		),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.LessonRepository,
			repos.EnrollmentRepository,
			repos.UserRepository,
			storage,
		),
		AdminService: NewAdminService(
			repos.MetricsRepository,
		),
		CertificateService: NewCertificateService(
			repos.CertificateRepository,
			repos.CourseRepository,
			repos.EnrollmentRepository,
			repos.UserRepository,
		),
		DocumentService: NewDocumentService(
			repos.DocumentRepository,
			repos.UserRepository,
			storage,
		),
	}
}
