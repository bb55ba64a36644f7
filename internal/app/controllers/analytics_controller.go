package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/app/services"
	"github.com/oguzk/campusreg/internal/middleware"
)

// defaultRankingSize matches the original charting layer's top-10 bar chart.
const defaultRankingSize = 10

// AnalyticsController exposes aggregate enrollment statistics. Every request
// recomputes from the entity stores; analytics log entries are written as a
// side effect and never read back.
type AnalyticsController struct {
	analyticsService services.AnalyticsService
	logsRepo         *repositories.LogsRepository
	logger           zerolog.Logger
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService, logsRepo *repositories.LogsRepository, logger zerolog.Logger) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		logsRepo:         logsRepo,
		logger:           logger,
	}
}

// Overview returns the headline statistics
// @Summary Enrollment overview
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsOverviewResponse}
// @Security BearerAuth
// @Router /analytics/overview [get]
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	snap, err := c.analyticsService.ComputeSnapshot()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logsRepo.AppendActivity(middleware.StudentIDFromContext(ctx), "Accessed Analytics page")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AnalyticsOverviewResponse{
			TotalStudents:            snap.TotalStudents,
			TotalCourses:             snap.TotalCourses,
			TotalRegistrations:       snap.TotalRegistrations,
			AverageCoursesPerStudent: snap.AverageCoursesPerStudent,
		},
	})
}

// Popularity returns the course popularity ranking
// @Summary Course popularity ranking
// @Tags analytics
// @Produce json
// @Param limit query int false "Ranking size (default 10)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseCountResponse}
// @Security BearerAuth
// @Router /analytics/popularity [get]
func (c *AnalyticsController) Popularity(ctx *gin.Context) {
	snap, err := c.analyticsService.ComputeSnapshot()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	limit := defaultRankingSize
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	ranking := snap.PopularityRanking(limit)
	out := make([]dto.CourseCountResponse, 0, len(ranking))
	for _, cc := range ranking {
		out = append(out, dto.CourseCountResponse{CourseCode: cc.CourseCode, Count: cc.Count})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: out})
}

// Programs returns the per-program student distribution
// @Summary Program distribution
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProgramCountResponse}
// @Security BearerAuth
// @Router /analytics/programs [get]
func (c *AnalyticsController) Programs(ctx *gin.Context) {
	snap, err := c.analyticsService.ComputeSnapshot()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.ProgramCountResponse, 0, len(snap.ProgramDistribution))
	for program, count := range snap.ProgramDistribution {
		out = append(out, dto.ProgramCountResponse{Program: program, Count: count})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: out})
}

// Credits returns per-student registered credit totals
// @Summary Credits per student
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CreditsResponse}
// @Security BearerAuth
// @Router /analytics/credits [get]
func (c *AnalyticsController) Credits(ctx *gin.Context) {
	snap, err := c.analyticsService.ComputeSnapshot()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.CreditsResponse, 0, len(snap.CreditsPerStudent))
	for studentID, credits := range snap.CreditsPerStudent {
		out = append(out, dto.CreditsResponse{StudentID: studentID, Credits: credits})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: out})
}
