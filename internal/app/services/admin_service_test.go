package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukta/backend/internal/app/models/dto"
)

func TestGetDashboardMetricsCombined(t *testing.T) {
	want := &dto.DashboardMetrics{
		TotalStudents:      10,
		TotalTeachers:      3,
		TotalCourses:       5,
		ActiveCourses:      4,
		FinishedCourses:    1,
		TotalLessons:       20,
		CertificatesIssued: 2,
		StudentsWithCV:     6,
	}
	repo := &fakeMetricsRepo{
		getDashboardMetricsFn: func(ctx context.Context) (*dto.DashboardMetrics, error) {
			return want, nil
		},
		countFn: func(name string) (int64, error) {
			t.Fatal("sequential counters must not run when the combined query succeeds")
			return 0, nil
		},
	}

	svc := NewAdminService(repo)
	got, err := svc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetDashboardMetricsFallsBackToSequential(t *testing.T) {
	counts := map[string]int64{
		"students":        7,
		"teachers":        2,
		"courses":         4,
		"activeCourses":   3,
		"finishedCourses": 1,
		"lessons":         12,
		"certificates":    5,
		"studentsWithCV":  3,
	}
	repo := &fakeMetricsRepo{
		getDashboardMetricsFn: func(ctx context.Context) (*dto.DashboardMetrics, error) {
			return nil, errors.New("combined query failed")
		},
		countFn: func(name string) (int64, error) {
			return counts[name], nil
		},
	}

	svc := NewAdminService(repo)
	got, err := svc.GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.DashboardMetrics{
		TotalStudents:      7,
		TotalTeachers:      2,
		TotalCourses:       4,
		ActiveCourses:      3,
		FinishedCourses:    1,
		TotalLessons:       12,
		CertificatesIssued: 5,
		StudentsWithCV:     3,
	}, got)
}

func TestGetDashboardMetricsSequentialFailure(t *testing.T) {
	repo := &fakeMetricsRepo{
		getDashboardMetricsFn: func(ctx context.Context) (*dto.DashboardMetrics, error) {
			return nil, errors.New("combined query failed")
		},
		countFn: func(name string) (int64, error) {
			if name == "lessons" {
				return 0, errors.New("lessons counter broken")
			}
			return 1, nil
		},
	}

	svc := NewAdminService(repo)
	_, err := svc.GetDashboardMetrics(context.Background())
	assert.Error(t, err)
}
