package services

import (
	"context"
	"mime/multipart"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/pkg/apperrors"
)

// Function-field fakes for the repository interfaces. Unset fields return
// zero values so each test only wires what it exercises.

type fakeUserRepo struct {
	createFn           func(ctx context.Context, user *models.User) (int64, error)
	getByIDFn          func(ctx context.Context, id int64) (*models.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*models.User, error)
	getByGoogleIDFn    func(ctx context.Context, googleID string) (*models.User, error)
	emailExistsFn      func(ctx context.Context, email string) (bool, error)
	updateFn           func(ctx context.Context, user *models.User) error
	listByRoleFn       func(ctx context.Context, role models.Role, offset uint64, limit int) ([]*models.User, error)
	countByRoleFn      func(ctx context.Context, role models.Role) (int64, error)
	filterStudentIDsFn func(ctx context.Context, ids []int64) ([]int64, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return 1, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	if f.getByGoogleIDFn != nil {
		return f.getByGoogleIDFn(ctx, googleID)
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if f.emailExistsFn != nil {
		return f.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role models.Role, offset uint64, limit int) ([]*models.User, error) {
	if f.listByRoleFn != nil {
		return f.listByRoleFn(ctx, role, offset, limit)
	}
	return nil, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	if f.countByRoleFn != nil {
		return f.countByRoleFn(ctx, role)
	}
	return 0, nil
}

func (f *fakeUserRepo) FilterStudentIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if f.filterStudentIDsFn != nil {
		return f.filterStudentIDsFn(ctx, ids)
	}
	return nil, nil
}

type fakeCourseRepo struct {
	createFn  func(ctx context.Context, course *models.Course) (int64, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Course, error)
	getAllFn  func(ctx context.Context, offset uint64, limit int) ([]*models.Course, error)
	countFn   func(ctx context.Context) (int64, error)
	updateFn  func(ctx context.Context, course *models.Course) error
	deleteFn  func(ctx context.Context, id int64) error
	existsFn  func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (int64, error) {
	if f.createFn != nil {
		return f.createFn(ctx, course)
	}
	return 1, nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseRepo) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, offset, limit)
	}
	return nil, nil
}

func (f *fakeCourseRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, course)
	}
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeCourseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, id)
	}
	return false, nil
}

type fakeLessonRepo struct {
	createFn            func(ctx context.Context, lesson *models.Lesson) (int64, error)
	getByIDFn           func(ctx context.Context, id int64) (*models.Lesson, error)
	getByCourseFn       func(ctx context.Context, courseID int64) ([]*models.Lesson, error)
	addVideoFn          func(ctx context.Context, video *models.Video) (int64, error)
	getVideosByLessonFn func(ctx context.Context, lessonID int64) ([]*models.Video, error)
}

func (f *fakeLessonRepo) Create(ctx context.Context, lesson *models.Lesson) (int64, error) {
	if f.createFn != nil {
		return f.createFn(ctx, lesson)
	}
	return 1, nil
}

func (f *fakeLessonRepo) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrLessonNotFound
}

func (f *fakeLessonRepo) GetByCourse(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	if f.getByCourseFn != nil {
		return f.getByCourseFn(ctx, courseID)
	}
	return nil, nil
}

func (f *fakeLessonRepo) AddVideo(ctx context.Context, video *models.Video) (int64, error) {
	if f.addVideoFn != nil {
		return f.addVideoFn(ctx, video)
	}
	return 1, nil
}

func (f *fakeLessonRepo) GetVideosByLesson(ctx context.Context, lessonID int64) ([]*models.Video, error) {
	if f.getVideosByLessonFn != nil {
		return f.getVideosByLessonFn(ctx, lessonID)
	}
	return nil, nil
}

type fakeEnrollmentRepo struct {
	assignStudentsFn      func(ctx context.Context, courseID int64, studentIDs []int64) ([]int64, error)
	removeStudentFn       func(ctx context.Context, courseID, studentID int64) error
	getStudentsByCourseFn func(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	getCoursesByStudentFn func(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	hasEnrollmentFn       func(ctx context.Context, courseID, studentID int64) (bool, error)
	markCertificateFn     func(ctx context.Context, courseID, studentID int64) error
}

func (f *fakeEnrollmentRepo) AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) ([]int64, error) {
	if f.assignStudentsFn != nil {
		return f.assignStudentsFn(ctx, courseID, studentIDs)
	}
	return studentIDs, nil
}

func (f *fakeEnrollmentRepo) RemoveStudent(ctx context.Context, courseID, studentID int64) error {
	if f.removeStudentFn != nil {
		return f.removeStudentFn(ctx, courseID, studentID)
	}
	return nil
}

func (f *fakeEnrollmentRepo) GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	if f.getStudentsByCourseFn != nil {
		return f.getStudentsByCourseFn(ctx, courseID)
	}
	return nil, nil
}

func (f *fakeEnrollmentRepo) GetCoursesByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if f.getCoursesByStudentFn != nil {
		return f.getCoursesByStudentFn(ctx, studentID)
	}
	return nil, nil
}

func (f *fakeEnrollmentRepo) HasEnrollment(ctx context.Context, courseID, studentID int64) (bool, error) {
	if f.hasEnrollmentFn != nil {
		return f.hasEnrollmentFn(ctx, courseID, studentID)
	}
	return false, nil
}

func (f *fakeEnrollmentRepo) MarkCertificate(ctx context.Context, courseID, studentID int64) error {
	if f.markCertificateFn != nil {
		return f.markCertificateFn(ctx, courseID, studentID)
	}
	return nil
}

type fakeCertificateRepo struct {
	createFn       func(ctx context.Context, cert *models.Certificate) (int64, error)
	getByIDFn      func(ctx context.Context, id int64) (*models.Certificate, error)
	getByStudentFn func(ctx context.Context, studentID int64) ([]*models.Certificate, error)
}

func (f *fakeCertificateRepo) Create(ctx context.Context, cert *models.Certificate) (int64, error) {
	if f.createFn != nil {
		return f.createFn(ctx, cert)
	}
	return 1, nil
}

func (f *fakeCertificateRepo) GetByID(ctx context.Context, id int64) (*models.Certificate, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrCertificateNotFound
}

func (f *fakeCertificateRepo) GetByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	if f.getByStudentFn != nil {
		return f.getByStudentFn(ctx, studentID)
	}
	return nil, nil
}

type fakeDocumentRepo struct {
	saveFn        func(ctx context.Context, doc *models.Document) (int64, error)
	getByUserIDFn func(ctx context.Context, userID int64) (*models.Document, error)
}

func (f *fakeDocumentRepo) Save(ctx context.Context, doc *models.Document) (int64, error) {
	if f.saveFn != nil {
		return f.saveFn(ctx, doc)
	}
	return 1, nil
}

func (f *fakeDocumentRepo) GetByUserID(ctx context.Context, userID int64) (*models.Document, error) {
	if f.getByUserIDFn != nil {
		return f.getByUserIDFn(ctx, userID)
	}
	return nil, apperrors.ErrDocumentNotFound
}

type fakeTokenRepo struct {
	createFn           func(ctx context.Context, token *models.RefreshToken) (int64, error)
	getByTokenFn       func(ctx context.Context, token string) (*models.RefreshToken, error)
	revokeFn           func(ctx context.Context, token string) error
	revokeAllForUserFn func(ctx context.Context, userID int64) error
	deleteExpiredFn    func(ctx context.Context) (int64, error)
}

func (f *fakeTokenRepo) Create(ctx context.Context, token *models.RefreshToken) (int64, error) {
	if f.createFn != nil {
		return f.createFn(ctx, token)
	}
	return 1, nil
}

func (f *fakeTokenRepo) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.getByTokenFn != nil {
		return f.getByTokenFn(ctx, token)
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeTokenRepo) Revoke(ctx context.Context, token string) error {
	if f.revokeFn != nil {
		return f.revokeFn(ctx, token)
	}
	return nil
}

func (f *fakeTokenRepo) RevokeAllForUser(ctx context.Context, userID int64) error {
	if f.revokeAllForUserFn != nil {
		return f.revokeAllForUserFn(ctx, userID)
	}
	return nil
}

func (f *fakeTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	if f.deleteExpiredFn != nil {
		return f.deleteExpiredFn(ctx)
	}
	return 0, nil
}

type fakeMetricsRepo struct {
	getDashboardMetricsFn func(ctx context.Context) (*dto.DashboardMetrics, error)
	countFn               func(name string) (int64, error)
}

func (f *fakeMetricsRepo) GetDashboardMetrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	if f.getDashboardMetricsFn != nil {
		return f.getDashboardMetricsFn(ctx)
	}
	return &dto.DashboardMetrics{}, nil
}

func (f *fakeMetricsRepo) count(name string) (int64, error) {
	if f.countFn != nil {
		return f.countFn(name)
	}
	return 0, nil
}

func (f *fakeMetricsRepo) CountStudents(ctx context.Context) (int64, error) {
	return f.count("students")
}

func (f *fakeMetricsRepo) CountTeachers(ctx context.Context) (int64, error) {
	return f.count("teachers")
}

func (f *fakeMetricsRepo) CountCourses(ctx context.Context) (int64, error) {
	return f.count("courses")
}

func (f *fakeMetricsRepo) CountActiveCourses(ctx context.Context) (int64, error) {
	return f.count("activeCourses")
}

func (f *fakeMetricsRepo) CountFinishedCourses(ctx context.Context) (int64, error) {
	return f.count("finishedCourses")
}

func (f *fakeMetricsRepo) CountLessons(ctx context.Context) (int64, error) {
	return f.count("lessons")
}

func (f *fakeMetricsRepo) CountCertificates(ctx context.Context) (int64, error) {
	return f.count("certificates")
}

func (f *fakeMetricsRepo) CountStudentsWithCV(ctx context.Context) (int64, error) {
	return f.count("studentsWithCV")
}

type fakeStorage struct {
	savedPaths   []string
	deletedPaths []string
	saveErr      error
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	path := "/uploads/" + subPath + "/file"
	f.savedPaths = append(f.savedPaths, path)
	return path, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error {
	f.deletedPaths = append(f.deletedPaths, filePath)
	return nil
}

type fakeEmailService struct {
	notifications []string
	welcomes      []string
}

func (f *fakeEmailService) SendNotification(toEmail, subject, body string) error {
	f.notifications = append(f.notifications, toEmail)
	return nil
}

func (f *fakeEmailService) SendWelcomeEmail(toEmail, toName string) error {
	f.welcomes = append(f.welcomes, toEmail)
	return nil
}
