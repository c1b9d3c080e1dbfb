package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/pkg/apperrors"
)

func newCourseServiceForAssignment(courseExists bool, validStudents, assigned []int64) *CourseService {
	courseRepo := &fakeCourseRepo{
		existsFn: func(ctx context.Context, id int64) (bool, error) {
			return courseExists, nil
		},
	}
	userRepo := &fakeUserRepo{
		filterStudentIDsFn: func(ctx context.Context, ids []int64) ([]int64, error) {
			return validStudents, nil
		},
	}
	enrollmentRepo := &fakeEnrollmentRepo{
		assignStudentsFn: func(ctx context.Context, courseID int64, studentIDs []int64) ([]int64, error) {
			return assigned, nil
		},
	}

	return NewCourseService(courseRepo, &fakeLessonRepo{}, enrollmentRepo, userRepo, &fakeStorage{})
}

func TestGetAllCoursesPaginated(t *testing.T) {
	var gotOffset uint64
	var gotLimit int
	courseRepo := &fakeCourseRepo{
		getAllFn: func(ctx context.Context, offset uint64, limit int) ([]*models.Course, error) {
			gotOffset = offset
			gotLimit = limit
			return []*models.Course{{ID: 21, Name: "Go Básico"}}, nil
		},
		countFn: func(ctx context.Context) (int64, error) {
			return 41, nil
		},
	}
	svc := NewCourseService(courseRepo, &fakeLessonRepo{}, &fakeEnrollmentRepo{}, &fakeUserRepo{}, &fakeStorage{})

	resp, err := svc.GetAll(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), gotOffset)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 3, resp.Pagination.CurrentPage)
	assert.Equal(t, 5, resp.Pagination.TotalPages)
	assert.Equal(t, int64(41), resp.Pagination.TotalItems)

	courses, ok := resp.Items.([]*models.Course)
	require.True(t, ok)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Básico", courses[0].Name)
}

func TestAssignStudentsEmptyList(t *testing.T) {
	svc := newCourseServiceForAssignment(true, nil, nil)

	_, err := svc.AssignStudents(context.Background(), 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStudentIDs)

	_, err = svc.AssignStudents(context.Background(), 1, []int64{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStudentIDs)
}

func TestAssignStudentsCourseNotFound(t *testing.T) {
	svc := newCourseServiceForAssignment(false, nil, nil)

	_, err := svc.AssignStudents(context.Background(), 99, []int64{1, 2})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestAssignStudentsNoValidStudents(t *testing.T) {
	svc := newCourseServiceForAssignment(true, []int64{}, nil)

	_, err := svc.AssignStudents(context.Background(), 1, []int64{100, 200})
	assert.ErrorIs(t, err, apperrors.ErrNoValidStudents)
}

func TestAssignStudentsPartialResult(t *testing.T) {
	// Of the requested IDs, 2 and 3 are real students; 3 was already
	// enrolled so only 2 is newly assigned.
	svc := newCourseServiceForAssignment(true, []int64{2, 3}, []int64{2})

	result, err := svc.AssignStudents(context.Background(), 1, []int64{2, 3, 999})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, result.Assigned)
	assert.Equal(t, []int64{3, 999}, result.Skipped)
}

func TestAssignStudentsAllAssigned(t *testing.T) {
	svc := newCourseServiceForAssignment(true, []int64{5, 6}, []int64{5, 6})

	result, err := svc.AssignStudents(context.Background(), 1, []int64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, result.Assigned)
	assert.Empty(t, result.Skipped)
}

func TestAddLessonCourseNotFound(t *testing.T) {
	svc := newCourseServiceForAssignment(false, nil, nil)

	_, err := svc.AddLesson(context.Background(), 42, nil)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestRemoveStudentCourseNotFound(t *testing.T) {
	svc := newCourseServiceForAssignment(false, nil, nil)

	err := svc.RemoveStudent(context.Background(), 42, 1)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
