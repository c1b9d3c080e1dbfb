package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/services"
	"github.com/edukta/backend/internal/middleware"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/helpers"
)

// CourseController handles course, lesson, video and assignment endpoints.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses handles GET /courses
func (ctrl *CourseController) GetAllCourses(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	courses, err := ctrl.courseService.GetAll(c.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", courses)
}

// GetCourseByID handles GET /courses/:id
func (ctrl *CourseController) GetCourseByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := ctrl.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", course)
}

// CreateCourse handles POST /courses
func (ctrl *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid course payload", nil)
		return
	}

	course, err := ctrl.courseService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Course created", course)
}

// UpdateCourse handles PUT /courses/:id
func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid course payload", nil)
		return
	}

	course, err := ctrl.courseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Course updated", course)
}

// DeleteCourse handles DELETE /courses/:id
func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.courseService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Course deleted", nil)
}

// AssignStudents handles POST /courses/:id/students
func (ctrl *CourseController) AssignStudents(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AssignStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.ErrInvalidStudentIDs)
		return
	}

	result, err := ctrl.courseService.AssignStudents(c.Request.Context(), id, req.StudentIDs)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Students assigned", result)
}

// RemoveStudent handles DELETE /courses/:id/students/:studentId
func (ctrl *CourseController) RemoveStudent(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.courseService.RemoveStudent(c.Request.Context(), courseID, studentID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Student removed", nil)
}

// GetCourseStudents handles GET /courses/:id/students
func (ctrl *CourseController) GetCourseStudents(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	students, err := ctrl.courseService.GetStudents(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", students)
}

// CreateLesson handles POST /courses/:id/lessons
func (ctrl *CourseController) CreateLesson(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid lesson payload", nil)
		return
	}

	lesson, err := ctrl.courseService.AddLesson(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Lesson created", lesson)
}

// GetCourseLessons handles GET /courses/:id/lessons
func (ctrl *CourseController) GetCourseLessons(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	lessons, err := ctrl.courseService.GetLessons(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", lessons)
}

// UploadLessonVideo handles POST /lessons/:lessonId/videos
func (ctrl *CourseController) UploadLessonVideo(c *gin.Context) {
	lessonID, err := parseIDParam(c, "lessonId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		respond(c, http.StatusBadRequest, "Missing video file", nil)
		return
	}

	video, err := ctrl.courseService.UploadVideo(c.Request.Context(), lessonID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Video uploaded", video)
}

// GetLessonVideos handles GET /lessons/:lessonId/videos
func (ctrl *CourseController) GetLessonVideos(c *gin.Context) {
	lessonID, err := parseIDParam(c, "lessonId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	videos, err := ctrl.courseService.GetVideos(c.Request.Context(), lessonID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", videos)
}
