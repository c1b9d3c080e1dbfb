package services

import (
	"context"
	"mime/multipart"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/filestorage"
	"github.com/edukta/backend/internal/pkg/helpers"
	"github.com/edukta/backend/internal/pkg/logger"
)

// CourseService handles course, lesson, video and assignment operations.
type CourseService struct {
	courseRepo     repositories.ICourseRepository
	lessonRepo     repositories.ILessonRepository
	enrollmentRepo repositories.IEnrollmentRepository
	userRepo       repositories.IUserRepository
	storage        filestorage.FileStorage
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	lessonRepo repositories.ILessonRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	userRepo repositories.IUserRepository,
	storage filestorage.FileStorage,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		storage:        storage,
	}
}

// Create creates a course and returns it with the teacher name resolved.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Hours:       req.Hours,
		TeacherID:   req.TeacherID,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id)
}

// GetByID returns a course by ID.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll returns one page of courses with pagination metadata.
func (s *CourseService) GetAll(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, err := s.courseRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      courses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// Update applies a full course update and returns the updated course.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Hours:       req.Hours,
		TeacherID:   req.TeacherID,
		Finished:    req.Finished,
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id)
}

// Delete removes a course and everything hanging off it.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// AssignStudents enrolls students in a course. IDs that do not belong to an
// existing student account, or that are already enrolled, are reported as
// skipped rather than failing the whole request.
func (s *CourseService) AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) (*dto.AssignStudentsResult, error) {
	if len(studentIDs) == 0 {
		return nil, apperrors.ErrInvalidStudentIDs
	}

	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	valid, err := s.userRepo.FilterStudentIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, apperrors.ErrNoValidStudents
	}

	assigned, err := s.enrollmentRepo.AssignStudents(ctx, courseID, valid)
	if err != nil {
		return nil, err
	}

	assignedSet := make(map[int64]struct{}, len(assigned))
	for _, id := range assigned {
		assignedSet[id] = struct{}{}
	}

	skipped := []int64{}
	for _, id := range studentIDs {
		if _, ok := assignedSet[id]; !ok {
			skipped = append(skipped, id)
		}
	}

	return &dto.AssignStudentsResult{
		Assigned: assigned,
		Skipped:  skipped,
	}, nil
}

// RemoveStudent unenrolls a student from a course.
func (s *CourseService) RemoveStudent(ctx context.Context, courseID, studentID int64) error {
	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}

	return s.enrollmentRepo.RemoveStudent(ctx, courseID, studentID)
}

// GetStudents lists the students assigned to a course.
func (s *CourseService) GetStudents(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	return s.enrollmentRepo.GetStudentsByCourse(ctx, courseID)
}

// AddLesson creates a lesson in a course.
func (s *CourseService) AddLesson(ctx context.Context, courseID int64, req *dto.CreateLessonRequest) (*models.Lesson, error) {
	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	lesson := &models.Lesson{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
	}

	id, err := s.lessonRepo.Create(ctx, lesson)
	if err != nil {
		return nil, err
	}
	lesson.ID = id

	return lesson, nil
}

// GetLessons lists the lessons of a course.
func (s *CourseService) GetLessons(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	return s.lessonRepo.GetByCourse(ctx, courseID)
}

// UploadVideo stores a video file and attaches it to a lesson.
func (s *CourseService) UploadVideo(ctx context.Context, lessonID int64, fileHeader *multipart.FileHeader) (*models.Video, error) {
	if _, err := s.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return nil, err
	}

	path, err := s.storage.SaveFile(fileHeader, "videos")
	if err != nil {
		return nil, err
	}

	video := &models.Video{
		LessonID: lessonID,
		Path:     path,
	}

	id, err := s.lessonRepo.AddVideo(ctx, video)
	if err != nil {
		// The row failed, clean up the orphaned file.
		if delErr := s.storage.DeleteFile(path); delErr != nil {
			logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove orphaned video file")
		}
		return nil, err
	}
	video.ID = id

	return video, nil
}

// GetVideos lists the videos of a lesson.
func (s *CourseService) GetVideos(ctx context.Context, lessonID int64) ([]*models.Video, error) {
	if _, err := s.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return nil, err
	}

	return s.lessonRepo.GetVideosByLesson(ctx, lessonID)
}
