package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/dberrors"
	"github.com/edukta/backend/internal/pkg/logger"
)

// ICertificateRepository defines the certificate data-access contract.
type ICertificateRepository interface {
	Create(ctx context.Context, cert *models.Certificate) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Certificate, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error)
}

const certificateColumns = "id, course_id, student_id, name, hours, date_emission, teacher_name, student_name"

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCertificate(row pgx.Row) (*models.Certificate, error) {
	cert := &models.Certificate{}
	err := row.Scan(&cert.ID, &cert.CourseID, &cert.StudentID, &cert.Name, &cert.Hours,
		&cert.DateEmission, &cert.TeacherName, &cert.StudentName)
	if err != nil {
		return nil, err
	}
	return cert, nil
}

// Create inserts a new certificate. Course name, hours and the people's
// names are denormalized so the record survives later edits.
func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) (int64, error) {
	sql, args, err := r.sb.Insert("certificates").
		Columns("course_id", "student_id", "name", "hours", "date_emission", "teacher_name", "student_name").
		Values(cert.CourseID, cert.StudentID, cert.Name, cert.Hours, cert.DateEmission, cert.TeacherName, cert.StudentName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create certificate query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrCertificateExists
		}
		logger.Error().Err(err).Int64("courseID", cert.CourseID).Int64("studentID", cert.StudentID).Msg("Error executing create certificate query")
		return 0, fmt.Errorf("error creating certificate: %w", err)
	}

	return id, nil
}

// GetByID retrieves a certificate by ID
func (r *CertificateRepository) GetByID(ctx context.Context, id int64) (*models.Certificate, error) {
	sql, args, err := r.sb.Select(certificateColumns).
		From("certificates").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get certificate query: %w", err)
	}

	cert, err := scanCertificate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("error getting certificate by ID: %w", err)
	}

	return cert, nil
}

// GetByStudent retrieves all certificates issued to a student, newest first.
func (r *CertificateRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	sql, args, err := r.sb.Select(certificateColumns).
		From("certificates").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date_emission DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get certificates query")
		return nil, fmt.Errorf("error querying certificates: %w", err)
	}
	defer rows.Close()

	certs := []*models.Certificate{}
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certs = append(certs, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}

	return certs, nil
}
