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

// ILessonRepository defines the lesson/video data-access contract.
type ILessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error)
	AddVideo(ctx context.Context, video *models.Video) (int64, error)
	GetVideosByLesson(ctx context.Context, lessonID int64) ([]*models.Video, error)
}

// LessonRepository handles lesson and video database operations
type LessonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lesson and returns its ID.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) (int64, error) {
	sql, args, err := r.sb.Insert("lessons").
		Columns("course_id", "title", "description", "time_minutes").
		Values(lesson.CourseID, lesson.Title, lesson.Description, lesson.Time).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create lesson query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", lesson.CourseID).Msg("Error executing create lesson query")
		return 0, fmt.Errorf("error creating lesson: %w", err)
	}

	return id, nil
}

// GetByID retrieves a lesson by ID
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	sql, args, err := r.sb.Select("id", "course_id", "title", "description", "time_minutes").
		From("lessons").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lesson query: %w", err)
	}

	lesson := &models.Lesson{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Description, &lesson.Time)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("error getting lesson by ID: %w", err)
	}

	return lesson, nil
}

// GetByCourse retrieves all lessons of a course, in insertion order.
func (r *LessonRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	sql, args, err := r.sb.Select("id", "course_id", "title", "description", "time_minutes").
		From("lessons").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lessons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get lessons query")
		return nil, fmt.Errorf("error querying lessons: %w", err)
	}
	defer rows.Close()

	lessons := []*models.Lesson{}
	for rows.Next() {
		lesson := &models.Lesson{}
		if err := rows.Scan(&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Description, &lesson.Time); err != nil {
			return nil, fmt.Errorf("error scanning lesson row: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}

	return lessons, nil
}

// AddVideo attaches a video file to a lesson.
func (r *LessonRepository) AddVideo(ctx context.Context, video *models.Video) (int64, error) {
	sql, args, err := r.sb.Insert("videos").
		Columns("lesson_id", "path").
		Values(video.LessonID, video.Path).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add video query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrLessonNotFound
		}
		logger.Error().Err(err).Int64("lessonID", video.LessonID).Msg("Error executing add video query")
		return 0, fmt.Errorf("error adding video: %w", err)
	}

	return id, nil
}

// GetVideosByLesson retrieves all videos of a lesson.
func (r *LessonRepository) GetVideosByLesson(ctx context.Context, lessonID int64) ([]*models.Video, error) {
	sql, args, err := r.sb.Select("id", "lesson_id", "path").
		From("videos").
		Where(squirrel.Eq{"lesson_id": lessonID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get videos query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying videos: %w", err)
	}
	defer rows.Close()

	videos := []*models.Video{}
	for rows.Next() {
		video := &models.Video{}
		if err := rows.Scan(&video.ID, &video.LessonID, &video.Path); err != nil {
			return nil, fmt.Errorf("error scanning video row: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", err)
	}

	return videos, nil
}
