package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oficinahub/workshop-scheduler/internal/httperr"
	"github.com/oficinahub/workshop-scheduler/internal/httpresp"
	"github.com/oficinahub/workshop-scheduler/internal/middleware"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "Missing authentication.")
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_id_type", "Missing authentication.")
		return
	}

	var user models.User
	if err := h.db.Preload("Workshop").First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"phone":       user.Phone,
			"role":        user.Role,
			"workshop_id": user.WorkshopID,
		},
		"workshop": gin.H{
			"id":      user.Workshop.ID,
			"name":    user.Workshop.Name,
			"slug":    user.Workshop.Slug,
			"phone":   user.Workshop.Phone,
			"address": user.Workshop.Address,
		},
	})
}
