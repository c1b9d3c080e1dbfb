package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/controllers"
	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	userController *controllers.UserController,
	adminController *controllers.AdminController,
	certificateController *controllers.CertificateController,
	documentController *controllers.DocumentController,
	emailController *controllers.EmailController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/sign-in", authController.SignIn)
		auth.POST("/register", authController.Register)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/sign-out", authController.SignOut)
		auth.GET("/google/login", authController.GoogleLogin)
		auth.GET("/google/callback", authController.GoogleCallback)
	}

	// Registration aliases. Student self-registration is public, the
	// admin variant may pick any role.
	v1.POST("/register/student", authController.Register)
	v1.POST("/register/student/admin",
		authMiddleware.JWTAuth(),
		authMiddleware.RoleRequired(models.RoleAdmin),
		adminController.RegisterUser)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		// Courses: every signed-in user can browse, writes are staff-only.
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.GET("/:id/lessons", courseController.GetCourseLessons)

			coursesStaff := courses.Group("")
			coursesStaff.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				coursesStaff.POST("", courseController.CreateCourse)
				coursesStaff.PUT("/:id", courseController.UpdateCourse)
				coursesStaff.DELETE("/:id", courseController.DeleteCourse)
				coursesStaff.POST("/:id/lessons", courseController.CreateLesson)
				coursesStaff.GET("/:id/students", courseController.GetCourseStudents)
				coursesStaff.POST("/:id/students", courseController.AssignStudents)
				coursesStaff.DELETE("/:id/students/:studentId", courseController.RemoveStudent)
			}
		}

		// Lessons: video listing for everyone signed in, uploads staff-only.
		lessons := authenticated.Group("/lessons")
		{
			lessons.GET("/:lessonId/videos", courseController.GetLessonVideos)

			lessonsStaff := lessons.Group("")
			lessonsStaff.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				lessonsStaff.POST("/:lessonId/videos", courseController.UploadLessonVideo)
			}
		}

		// Users and profiles
		users := authenticated.Group("/users")
		{
			users.GET("/:id", userController.GetUserByID)
			users.PUT("/:id", userController.UpdateUser)
		}

		// CV documents. Access checks live in the controller so students
		// can manage their own CV while staff can reach any.
		documents := authenticated.Group("/documents")
		{
			documents.POST("/student/:id/cv", documentController.UploadCV)
			documents.GET("/student/:id/cv", documentController.GetCV)
		}

		students := authenticated.Group("/students")
		{
			students.GET("/:id/profile", userController.GetStudentProfile)
			students.GET("/:id/certificates", certificateController.GetStudentCertificates)

			studentsStaff := students.Group("")
			studentsStaff.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				studentsStaff.GET("", userController.ListStudents)
			}
		}

		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", userController.ListTeachers)
		}

		// Certificates
		certificates := authenticated.Group("/certificates")
		{
			certificates.GET("/:id", certificateController.GetCertificateByID)

			certificatesStaff := certificates.Group("")
			certificatesStaff.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				certificatesStaff.POST("", certificateController.IssueCertificate)
			}
		}

		// Outbound mail, staff-only.
		email := authenticated.Group("/email")
		email.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			email.POST("/notification", emailController.SendNotification)
		}

		// Admin-only surface
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/metrics", adminController.GetDashboardMetrics)
		}
	}
}
