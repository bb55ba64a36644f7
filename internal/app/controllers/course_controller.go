package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/app/services"
	"github.com/oguzk/campusreg/internal/middleware"
)

// CourseController handles catalog views and course registration.
type CourseController struct {
	registrationService services.RegistrationService
	courseRepo          *repositories.CourseRepository
	logsRepo            *repositories.LogsRepository
	logger              zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(
	registrationService services.RegistrationService,
	courseRepo *repositories.CourseRepository,
	logsRepo *repositories.LogsRepository,
	logger zerolog.Logger,
) *CourseController {
	return &CourseController{
		registrationService: registrationService,
		courseRepo:          courseRepo,
		logsRepo:            logsRepo,
		logger:              logger,
	}
}

// ListCourses returns the catalog, optionally excluding already-registered courses
// @Summary List courses
// @Description Returns the course catalog. With available=true, courses the student is already registered for are filtered out.
// @Tags courses
// @Produce json
// @Param available query bool false "Only courses the student is not registered for"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Security BearerAuth
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	studentID := middleware.StudentIDFromContext(ctx)

	var err error
	var courses = []dto.CourseResponse{}
	if ctx.Query("available") == "true" {
		available, listErr := c.registrationService.ListAvailableCourses(studentID)
		err = listErr
		courses = dto.NewCourseListResponse(available)
	} else {
		all, listErr := c.registrationService.ListCourses()
		err = listErr
		courses = dto.NewCourseListResponse(all)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}

// GetMyCourses returns the student's registered courses with a credit total
// @Summary View registered courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RegisteredCoursesResponse}
// @Security BearerAuth
// @Router /students/me/courses [get]
func (c *CourseController) GetMyCourses(ctx *gin.Context) {
	studentID := middleware.StudentIDFromContext(ctx)

	courses, totalCredits, err := c.registrationService.StudentCourses(studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.RegisteredCoursesResponse{
			Courses:      dto.NewCourseListResponse(courses),
			TotalCredits: totalCredits,
		},
	})
}

// RegisterCourse registers the student for a catalog course
// @Summary Register for a course
// @Tags courses
// @Produce json
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course limit reached or schedule conflict"
// @Security BearerAuth
// @Router /students/me/courses/{courseCode} [post]
func (c *CourseController) RegisterCourse(ctx *gin.Context) {
	studentID := middleware.StudentIDFromContext(ctx)
	courseCode := ctx.Param("courseCode")

	// The domain service is deliberately permissive about unknown codes, so
	// catalog membership is checked here before registering.
	if _, err := c.courseRepo.FindByCode(courseCode); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.registrationService.AddCourse(studentID, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(student)})
}

// DropCourse removes a course from the student's registration
// @Summary Drop a course
// @Tags courses
// @Produce json
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Security BearerAuth
// @Router /students/me/courses/{courseCode} [delete]
func (c *CourseController) DropCourse(ctx *gin.Context) {
	studentID := middleware.StudentIDFromContext(ctx)
	courseCode := ctx.Param("courseCode")

	student, err := c.registrationService.DropCourse(studentID, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(student)})
}
