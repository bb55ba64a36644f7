package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/campusreg/internal/app/models/dto"
	"github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/middleware"
)

// defaultActivityTail matches the original dashboard's recent-activity panel.
const defaultActivityTail = 10

// ActivityController exposes the audit trails as opaque text lines.
type ActivityController struct {
	logsRepo *repositories.LogsRepository
	logger   zerolog.Logger
}

// NewActivityController creates a new ActivityController
func NewActivityController(logsRepo *repositories.LogsRepository, logger zerolog.Logger) *ActivityController {
	return &ActivityController{
		logsRepo: logsRepo,
		logger:   logger,
	}
}

// RecentActivity returns the tail of the activity log
// @Summary Recent activity
// @Tags activity
// @Produce json
// @Param limit query int false "Number of lines (default 10)"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse}
// @Security BearerAuth
// @Router /activity/recent [get]
func (c *ActivityController) RecentActivity(ctx *gin.Context) {
	limit := defaultActivityTail
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := c.logsRepo.TailActivity(limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if entries == nil {
		entries = []string{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.ActivityResponse{Entries: entries}})
}

// RegistrationHistory returns all registration event lines
// @Summary Registration history
// @Tags activity
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationHistoryResponse}
// @Security BearerAuth
// @Router /registrations/history [get]
func (c *ActivityController) RegistrationHistory(ctx *gin.Context) {
	events, err := c.logsRepo.AllRegistrationEvents()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if events == nil {
		events = []string{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.RegistrationHistoryResponse{Events: events}})
}
