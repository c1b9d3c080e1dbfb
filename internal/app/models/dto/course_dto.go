package dto

// CreateCourseRequest represents a course creation payload
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Hours       int    `json:"hours" binding:"required,min=1"`
	TeacherID   *int64 `json:"teacherId,omitempty"`
}

// UpdateCourseRequest represents a course update payload
type UpdateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Hours       int    `json:"hours" binding:"required,min=1"`
	TeacherID   *int64 `json:"teacherId,omitempty"`
	Finished    bool   `json:"finished"`
}

// CreateLessonRequest represents a lesson creation payload
type CreateLessonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Time        int    `json:"time" binding:"required,min=1"`
}

// AssignStudentsRequest carries the student IDs to assign to a course.
type AssignStudentsRequest struct {
	StudentIDs []int64 `json:"studentIds"`
}

// AssignStudentsResult reports the outcome of a bulk assignment: which IDs
// were assigned and which were skipped (unknown users, non-students, or
// already assigned).
type AssignStudentsResult struct {
	Assigned []int64 `json:"assigned"`
	Skipped  []int64 `json:"skipped"`
}
