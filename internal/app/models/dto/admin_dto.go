package dto

// DashboardMetrics is the admin dashboard aggregate: eight counters, all
// present and numeric whether they come from the combined query or from the
// per-metric fallback.
type DashboardMetrics struct {
	TotalStudents      int64 `json:"totalStudents"`
	TotalTeachers      int64 `json:"totalTeachers"`
	TotalCourses       int64 `json:"totalCourses"`
	ActiveCourses      int64 `json:"activeCourses"`
	FinishedCourses    int64 `json:"finishedCourses"`
	TotalLessons       int64 `json:"totalLessons"`
	CertificatesIssued int64 `json:"certificatesIssued"`
	StudentsWithCV     int64 `json:"studentsWithCV"`
}
