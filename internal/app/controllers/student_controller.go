package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/services"
	"github.com/oguzk/campusreg/internal/middleware"
)

// StudentController handles profile operations for the logged-in student.
type StudentController struct {
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(registrationService services.RegistrationService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// GetProfile returns the logged-in student's record
// @Summary Get own profile
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /students/me [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID := middleware.StudentIDFromContext(ctx)

	student, err := c.registrationService.GetStudent(studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(student)})
}

// UpdateProfile overwrites the editable profile fields
// @Summary Update own profile
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /students/me [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	studentID := middleware.StudentIDFromContext(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.registrationService.UpdateProfile(studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", studentID).Msg("Profile updated")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(student)})
}
