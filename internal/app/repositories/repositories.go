package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances. Every repository shares
// the one pool created at bootstrap.
type Repositories struct {
	UserRepository        *UserRepository
	CourseRepository      *CourseRepository
	LessonRepository      *LessonRepository
	EnrollmentRepository  *EnrollmentRepository
	CertificateRepository *CertificateRepository
	DocumentRepository    *DocumentRepository
	TokenRepository       *TokenRepository
	MetricsRepository     *MetricsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CourseRepository:      NewCourseRepository(db),
		LessonRepository:      NewLessonRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		CertificateRepository: NewCertificateRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		TokenRepository:       NewTokenRepository(db),
		MetricsRepository:     NewMetricsRepository(db),
	}
}
