package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oficinahub/workshop-scheduler/internal/cache"
	"github.com/oficinahub/workshop-scheduler/internal/httperr"
	"github.com/oficinahub/workshop-scheduler/internal/httpresp"
	"github.com/oficinahub/workshop-scheduler/internal/middleware"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.ServiceCache
}

func NewServiceHandler(db *gorm.DB, catalog *cache.ServiceCache) *ServiceHandler {
	return &ServiceHandler{db: db, catalog: catalog}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	WorkUnits   int    `json:"work_units" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	WorkUnits   *int    `json:"work_units,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("workshop_id = ?", workshopID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		WorkshopID:  workshopID,
		Name:        req.Name,
		Description: req.Description,
		WorkUnits:   req.WorkUnits,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), workshopID)

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	workshopID := c.MustGet(middleware.ContextWorkshopID).(uint)

	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND workshop_id = ?", id, workshopID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Failed to load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.WorkUnits != nil {
		if *req.WorkUnits < 1 {
			httperr.BadRequest(c, "invalid_work_units", "Work units must be at least 1.")
			return
		}
		service.WorkUnits = *req.WorkUnits
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to save service.")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), workshopID)

	httpresp.OK(c, service)
}
