package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/pkg/logger"
)

// IMetricsRepository defines the dashboard metrics data-access contract.
// GetDashboardMetrics fetches all counters in one round trip; the Count*
// methods let callers fall back to one query per metric if the combined
// query fails.
type IMetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (*dto.DashboardMetrics, error)
	CountStudents(ctx context.Context) (int64, error)
	CountTeachers(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
	CountActiveCourses(ctx context.Context) (int64, error)
	CountFinishedCourses(ctx context.Context) (int64, error)
	CountLessons(ctx context.Context) (int64, error)
	CountCertificates(ctx context.Context) (int64, error)
	CountStudentsWithCV(ctx context.Context) (int64, error)
}

// MetricsRepository computes admin dashboard counters
type MetricsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMetricsRepository creates a new MetricsRepository
func NewMetricsRepository(db *pgxpool.Pool) *MetricsRepository {
	return &MetricsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetDashboardMetrics runs all eight counters as subselects of a single query.
func (r *MetricsRepository) GetDashboardMetrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM users WHERE role_id = $1),
		(SELECT COUNT(*) FROM users WHERE role_id = $2),
		(SELECT COUNT(*) FROM courses),
		(SELECT COUNT(*) FROM courses WHERE finished = FALSE),
		(SELECT COUNT(*) FROM courses WHERE finished = TRUE),
		(SELECT COUNT(*) FROM lessons),
		(SELECT COUNT(*) FROM certificates),
		(SELECT COUNT(*) FROM users WHERE role_id = $1 AND has_cv = TRUE)`

	metrics := &dto.DashboardMetrics{}
	err := r.db.QueryRow(ctx, query, models.RoleStudent, models.RoleTeacher).Scan(
		&metrics.TotalStudents, &metrics.TotalTeachers, &metrics.TotalCourses,
		&metrics.ActiveCourses, &metrics.FinishedCourses, &metrics.TotalLessons,
		&metrics.CertificatesIssued, &metrics.StudentsWithCV)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing combined dashboard metrics query")
		return nil, fmt.Errorf("error getting dashboard metrics: %w", err)
	}

	return metrics, nil
}

func (r *MetricsRepository) count(ctx context.Context, table string, pred interface{}) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From(table)
	if pred != nil {
		builder = builder.Where(pred)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}

	return n, nil
}

// CountStudents counts all student accounts.
func (r *MetricsRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.count(ctx, "users", squirrel.Eq{"role_id": models.RoleStudent})
}

// CountTeachers counts all teacher accounts.
func (r *MetricsRepository) CountTeachers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users", squirrel.Eq{"role_id": models.RoleTeacher})
}

// CountCourses counts all courses.
func (r *MetricsRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.count(ctx, "courses", nil)
}

// CountActiveCourses counts courses not yet finished.
func (r *MetricsRepository) CountActiveCourses(ctx context.Context) (int64, error) {
	return r.count(ctx, "courses", squirrel.Eq{"finished": false})
}

// CountFinishedCourses counts finished courses.
func (r *MetricsRepository) CountFinishedCourses(ctx context.Context) (int64, error) {
	return r.count(ctx, "courses", squirrel.Eq{"finished": true})
}

// CountLessons counts all lessons.
func (r *MetricsRepository) CountLessons(ctx context.Context) (int64, error) {
	return r.count(ctx, "lessons", nil)
}

// CountCertificates counts all issued certificates.
func (r *MetricsRepository) CountCertificates(ctx context.Context) (int64, error) {
	return r.count(ctx, "certificates", nil)
}

// CountStudentsWithCV counts students who have uploaded a CV.
func (r *MetricsRepository) CountStudentsWithCV(ctx context.Context) (int64, error) {
	return r.count(ctx, "users", squirrel.And{
		squirrel.Eq{"role_id": models.RoleStudent},
		squirrel.Eq{"has_cv": true},
	})
}
