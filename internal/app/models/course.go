package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Hours       int     `json:"hours" db:"hours"`
	TeacherID   *int64  `json:"teacherId,omitempty" db:"teacher_id"`
	Finished    bool    `json:"finished" db:"finished"`
	TeacherName *string `json:"teacherName,omitempty"` // joined, no db column
}

// Lesson defines the lesson model based on the 'lessons' table
type Lesson struct {
	ID          int64  `json:"id" db:"id"`
	CourseID    int64  `json:"courseId" db:"course_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Time        int    `json:"time" db:"time_minutes"` // duration in minutes
}

// Video defines the video model based on the 'videos' table
type Video struct {
	ID       int64  `json:"id" db:"id"`
	LessonID int64  `json:"lessonId" db:"lesson_id"`
	Path     string `json:"path" db:"path"`
}
