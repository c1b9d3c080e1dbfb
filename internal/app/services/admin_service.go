package services

import (
	"context"

	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/pkg/logger"
)

// AdminService computes the admin dashboard.
type AdminService struct {
	metricsRepo repositories.IMetricsRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(metricsRepo repositories.IMetricsRepository) *AdminService {
	return &AdminService{metricsRepo: metricsRepo}
}

// GetDashboardMetrics returns the eight dashboard counters. The combined
// single-query path is tried first; if it fails the counters are fetched one
// by one so a single broken counter does not blank the whole dashboard.
func (s *AdminService) GetDashboardMetrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	metrics, err := s.metricsRepo.GetDashboardMetrics(ctx)
	if err == nil {
		return metrics, nil
	}

	logger.Warn().Err(err).Msg("Combined dashboard query failed, falling back to sequential counters")
	return s.sequentialMetrics(ctx)
}

func (s *AdminService) sequentialMetrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	metrics := &dto.DashboardMetrics{}

	counters := []struct {
		dst   *int64
		fetch func(context.Context) (int64, error)
	}{
		{&metrics.TotalStudents, s.metricsRepo.CountStudents},
		{&metrics.TotalTeachers, s.metricsRepo.CountTeachers},
		{&metrics.TotalCourses, s.metricsRepo.CountCourses},
		{&metrics.ActiveCourses, s.metricsRepo.CountActiveCourses},
		{&metrics.FinishedCourses, s.metricsRepo.CountFinishedCourses},
		{&metrics.TotalLessons, s.metricsRepo.CountLessons},
		{&metrics.CertificatesIssued, s.metricsRepo.CountCertificates},
		{&metrics.StudentsWithCV, s.metricsRepo.CountStudentsWithCV},
	}

	for _, c := range counters {
		n, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	return metrics, nil
}
