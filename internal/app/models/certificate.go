package models

import "time"

// Certificate defines the certificate model based on the 'certificates' table.
// Teacher and student names are denormalized at emission time so a certificate
// stays valid even if the underlying records change later.
type Certificate struct {
	ID           int64     `json:"id" db:"id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	Name         string    `json:"name" db:"name"`
	Hours        int       `json:"hours" db:"hours"`
	DateEmission time.Time `json:"dateEmission" db:"date_emission"`
	TeacherName  string    `json:"teacherName" db:"teacher_name"`
	StudentName  string    `json:"studentName" db:"student_name"`
}
