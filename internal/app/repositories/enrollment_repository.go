package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/logger"
)

// IEnrollmentRepository defines the course-student assignment contract.
type IEnrollmentRepository interface {
	AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) ([]int64, error)
	RemoveStudent(ctx context.Context, courseID, studentID int64) error
	GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	GetCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	HasEnrollment(ctx context.Context, courseID, studentID int64) (bool, error)
	MarkCertificate(ctx context.Context, courseID, studentID int64) error
}

// EnrollmentRepository handles course-student assignment operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AssignStudents enrolls the given students in a course in one statement.
// Students already enrolled are skipped; the IDs actually inserted are
// returned so callers can report partial results.
func (r *EnrollmentRepository) AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) ([]int64, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	builder := r.sb.Insert("course_students").
		Columns("course_id", "student_id")
	for _, studentID := range studentIDs {
		builder = builder.Values(courseID, studentID)
	}

	sql, args, err := builder.
		Suffix("ON CONFLICT (course_id, student_id) DO NOTHING RETURNING student_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assign students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing assign students query")
		return nil, fmt.Errorf("error assigning students: %w", err)
	}
	defer rows.Close()

	assigned := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning assigned student ID: %w", err)
		}
		assigned = append(assigned, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assigned student rows: %w", err)
	}

	return assigned, nil
}

// RemoveStudent unenrolls a student from a course.
func (r *EnrollmentRepository) RemoveStudent(ctx context.Context, courseID, studentID int64) error {
	sql, args, err := r.sb.Delete("course_students").
		Where(squirrel.Eq{"course_id": courseID, "student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Int64("studentID", studentID).Msg("Error executing remove student query")
		return fmt.Errorf("error removing student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotEnrolled
	}

	return nil
}

// GetStudentsByCourse lists the enrollments of a course with the student joined.
func (r *EnrollmentRepository) GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"cs.course_id", "cs.student_id", "cs.has_certificate", "cs.progress",
		"u.id", "u.name", "u.surname", "u.email", "u.has_cv", "u.phone", "u.degree").
		From("course_students cs").
		Join("users u ON u.id = cs.student_id").
		Where(squirrel.Eq{"cs.course_id": courseID}).
		OrderBy("u.surname ASC", "u.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get students query")
		return nil, fmt.Errorf("error querying course students: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Student: &models.User{}}
		if err := rows.Scan(&e.CourseID, &e.StudentID, &e.HasCertificate, &e.Progress,
			&e.Student.ID, &e.Student.Name, &e.Student.Surname, &e.Student.Email,
			&e.Student.HasCV, &e.Student.Phone, &e.Student.Degree); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		e.Student.RoleID = models.RoleStudent
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// GetCoursesByStudent lists the enrollments of a student with the course joined.
func (r *EnrollmentRepository) GetCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"cs.course_id", "cs.student_id", "cs.has_certificate", "cs.progress",
		"c.id", "c.name", "c.description", "c.hours", "c.teacher_id", "c.finished",
		"t.name || ' ' || t.surname AS teacher_name").
		From("course_students cs").
		Join("courses c ON c.id = cs.course_id").
		LeftJoin("users t ON t.id = c.teacher_id").
		Where(squirrel.Eq{"cs.student_id": studentID}).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get courses query")
		return nil, fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Course: &models.Course{}}
		if err := rows.Scan(&e.CourseID, &e.StudentID, &e.HasCertificate, &e.Progress,
			&e.Course.ID, &e.Course.Name, &e.Course.Description, &e.Course.Hours,
			&e.Course.TeacherID, &e.Course.Finished, &e.Course.TeacherName); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// HasEnrollment checks whether a student is enrolled in a course.
func (r *EnrollmentRepository) HasEnrollment(ctx context.Context, courseID, studentID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("course_students").
		Where(squirrel.Eq{"course_id": courseID, "student_id": studentID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build enrollment existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// MarkCertificate records on the enrollment that a certificate was issued.
func (r *EnrollmentRepository) MarkCertificate(ctx context.Context, courseID, studentID int64) error {
	sql, args, err := r.sb.Update("course_students").
		Set("has_certificate", true).
		Where(squirrel.Eq{"course_id": courseID, "student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark certificate query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Int64("studentID", studentID).Msg("Error executing mark certificate query")
		return fmt.Errorf("error marking certificate: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotEnrolled
	}

	return nil
}
