package models

// Enrollment is a row of the course_students join table: the assignment of a
// student to a course plus the certificate/progress projection read by the
// student profile and course-students views.
type Enrollment struct {
	CourseID       int64 `json:"courseId" db:"course_id"`
	StudentID      int64 `json:"studentId" db:"student_id"`
	HasCertificate bool  `json:"hasCertificate" db:"has_certificate"`
	Progress       int   `json:"progress" db:"progress"` // percentage 0..100

	// Joined fields, no db column
	Course  *Course `json:"course,omitempty"`
	Student *User   `json:"student,omitempty"`
}
