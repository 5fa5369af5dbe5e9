package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oficinahub/workshop-scheduler/internal/httperr"
	"github.com/oficinahub/workshop-scheduler/internal/httpresp"
	"github.com/oficinahub/workshop-scheduler/internal/models"
	ucSchedule "github.com/oficinahub/workshop-scheduler/internal/usecase/schedule"
)

// PublicHandler is the slug-resolved surface for clients without a login.
// Creation goes through the exact same validated path as the private API.
type PublicHandler struct {
	db          *gorm.DB
	createUC    *ucSchedule.CreateSchedule
	availableUC *ucSchedule.GetAvailableWorkload
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *ucSchedule.CreateSchedule,
	availableUC *ucSchedule.GetAvailableWorkload,
) *PublicHandler {
	return &PublicHandler{
		db:          db,
		createUC:    createUC,
		availableUC: availableUC,
	}
}

// --------- Requests ---------

type PublicCreateScheduleRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Notes     string `json:"notes"`
}

// --------- Handlers ---------

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.loadWorkshopBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("workshop_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.OK(c, gin.H{
		"workshop": shop,
		"services": services,
	})
}

func (h *PublicHandler) AvailableWorkload(c *gin.Context) {
	shop, ok := h.loadWorkshopBySlug(c)
	if !ok {
		return
	}

	report, err := h.availableUC.Execute(
		c.Request.Context(),
		shop.ID,
		nowInWorkshop(shop),
	)
	if err != nil {
		mapScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"workshop_id": shop.ID,
		"days":        report,
	})
}

func (h *PublicHandler) CreateSchedule(c *gin.Context) {
	shop, ok := h.loadWorkshopBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateScheduleRequest
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
		WorkshopID: shop.ID,
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

func (h *PublicHandler) loadWorkshopBySlug(c *gin.Context) (*models.Workshop, bool) {
	slug := c.Param("slug")

	var shop models.Workshop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "workshop_not_found", "Workshop not found.")
		return nil, false
	}
	return &shop, true
}
