// Package routes wires the HTTP surface of the registration system.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/campusreg/internal/app/controllers"
	"github.com/oguzk/campusreg/internal/middleware"
)

// Controllers groups the controller instances the router needs.
type Controllers struct {
	Auth      *controllers.AuthController
	Student   *controllers.StudentController
	Course    *controllers.CourseController
	Analytics *controllers.AnalyticsController
	Activity  *controllers.ActivityController
}

// SetupRoutes registers all API routes on the engine.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// Public endpoints
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/register", ctrl.Auth.Register)
	}

	// Everything below requires a valid session token
	protected := v1.Group("")
	protected.Use(authMiddleware.JWTAuth())
	{
		students := protected.Group("/students")
		{
			students.GET("/me", ctrl.Student.GetProfile)
			students.PUT("/me", ctrl.Student.UpdateProfile)
			students.GET("/me/courses", ctrl.Course.GetMyCourses)
			students.POST("/me/courses/:courseCode", ctrl.Course.RegisterCourse)
			students.DELETE("/me/courses/:courseCode", ctrl.Course.DropCourse)
		}

		protected.GET("/courses", ctrl.Course.ListCourses)

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/overview", ctrl.Analytics.Overview)
			analytics.GET("/popularity", ctrl.Analytics.Popularity)
			analytics.GET("/programs", ctrl.Analytics.Programs)
			analytics.GET("/credits", ctrl.Analytics.Credits)
		}

		protected.GET("/activity/recent", ctrl.Activity.RecentActivity)
		protected.GET("/registrations/history", ctrl.Activity.RegistrationHistory)
	}
}
