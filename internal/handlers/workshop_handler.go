package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oficinahub/workshop-scheduler/internal/httperr"
	"github.com/oficinahub/workshop-scheduler/internal/httpresp"
	"github.com/oficinahub/workshop-scheduler/internal/middleware"
	"github.com/oficinahub/workshop-scheduler/internal/models"
	"github.com/oficinahub/workshop-scheduler/internal/timezone"
)

type WorkshopHandler struct {
	db *gorm.DB
}

func NewWorkshopHandler(db *gorm.DB) *WorkshopHandler {
	return &WorkshopHandler{db: db}
}

type UpdateWorkshopRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (h *WorkshopHandler) GetMeWorkshop(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	var shop models.Workshop
	if err := h.db.First(&shop, workshopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "workshop_not_found", "Workshop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_workshop", "Failed to load workshop.")
		return
	}

	httpresp.OK(c, shop)
}

func (h *WorkshopHandler) UpdateMeWorkshop(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	var shop models.Workshop
	if err := h.db.First(&shop, workshopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "workshop_not_found", "Workshop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_workshop", "Failed to load workshop.")
		return
	}

	var req UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_workshop", "Failed to save workshop.")
		return
	}

	httpresp.OK(c, shop)
}
