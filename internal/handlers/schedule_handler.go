package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/httperr"
	"github.com/oficinahub/workshop-scheduler/internal/httpresp"
	"github.com/oficinahub/workshop-scheduler/internal/middleware"
	"github.com/oficinahub/workshop-scheduler/internal/models"
	ucSchedule "github.com/oficinahub/workshop-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB

	createUC    *ucSchedule.CreateSchedule
	availableUC *ucSchedule.GetAvailableWorkload
	todayUC     *ucSchedule.ListToday
	periodUC    *ucSchedule.ListPeriod
	removeUC    *ucSchedule.RemoveSchedule
}

func NewScheduleHandler(
	db *gorm.DB,
	createUC *ucSchedule.CreateSchedule,
	availableUC *ucSchedule.GetAvailableWorkload,
	todayUC *ucSchedule.ListToday,
	periodUC *ucSchedule.ListPeriod,
	removeUC *ucSchedule.RemoveSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:          db,
		createUC:    createUC,
		availableUC: availableUC,
		todayUC:     todayUC,
		periodUC:    periodUC,
		removeUC:    removeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Notes     string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	shop, ok := h.loadWorkshop(c, workshopID)
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	date, err := parseDateInWorkshop(shop, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	sch, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateScheduleInput{
		WorkshopID: workshopID,
		UserID:     &userID,
		ServiceID:  req.ServiceID,
		Date:       date,
		Notes:      req.Notes,
	})
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sch)
}

// ======================================================
// LIST
// ======================================================

func (h *ScheduleHandler) ListToday(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	shop, ok := h.loadWorkshop(c, workshopID)
	if !ok {
		return
	}

	schedules, err := h.todayUC.Execute(
		c.Request.Context(),
		workshopID,
		nowInWorkshop(shop),
	)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.List(c, schedules)
}

// ListPeriod serves the default lookahead window, or an explicit range when
// both start and end are given.
func (h *ScheduleHandler) ListPeriod(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	shop, ok := h.loadWorkshop(c, workshopID)
	if !ok {
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")

	if (startStr == "") != (endStr == "") {
		httperr.BadRequest(c, "invalid_range", "Provide both start and end, or neither.")
		return
	}

	if startStr == "" {
		schedules, err := h.periodUC.Execute(
			c.Request.Context(),
			workshopID,
			nowInWorkshop(shop),
		)
		if err != nil {
			mapScheduleError(c, err)
			return
		}
		httpresp.List(c, schedules)
		return
	}

	start, err := parseDateInWorkshop(shop, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "Invalid start date.")
		return
	}

	end, err := parseDateInWorkshop(shop, endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "Invalid end date.")
		return
	}

	if end.Before(start) {
		httperr.BadRequest(c, "invalid_range", "End date before start date.")
		return
	}

	schedules, err := h.periodUC.ExecuteRange(c.Request.Context(), workshopID, start, end)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.List(c, schedules)
}

// ======================================================
// AVAILABLE WORKLOAD
// ======================================================

func (h *ScheduleHandler) AvailableWorkload(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	shop, ok := h.loadWorkshop(c, workshopID)
	if !ok {
		return
	}

	report, err := h.availableUC.Execute(
		c.Request.Context(),
		workshopID,
		nowInWorkshop(shop),
	)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.List(c, report)
}

// ======================================================
// REMOVE
// ======================================================

func (h *ScheduleHandler) Remove(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid schedule id.")
		return
	}

	removed, err := h.removeUC.Execute(c.Request.Context(), workshopID, &userID, uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_remove_schedule", "Failed to remove schedule.")
		return
	}

	if !removed {
		httperr.NotFound(c, "schedule_not_found", "Schedule not found.")
		return
	}

	httpresp.OK(c, gin.H{"removed": true})
}

// ======================================================
// HELPERS
// ======================================================

func (h *ScheduleHandler) loadWorkshop(c *gin.Context, workshopID uint) (*models.Workshop, bool) {
	var shop models.Workshop
	if err := h.db.First(&shop, workshopID).Error; err != nil {
		httperr.Internal(c, "workshop_not_found", "Workshop not found.")
		return nil, false
	}
	return &shop, true
}

func mapScheduleError(c *gin.Context, err error) {
	var invalidDay *domain.InvalidDayError
	var exceeded *domain.WorkloadExceededError
	var svcMissing *domain.ServiceNotFoundError

	switch {
	case errors.As(err, &invalidDay):
		httperr.BadRequest(c, "invalid_day", "Weekends accept no schedules.")
	case errors.As(err, &exceeded):
		httperr.Conflict(c, "workload_exceeded", "Day workload limit exceeded.")
	case errors.As(err, &svcMissing):
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	default:
		httperr.Internal(c, "schedule_operation_failed", "Failed to process schedules.")
	}
}
