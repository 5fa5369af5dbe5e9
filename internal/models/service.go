package models

import "time"

// Service is the workshop's reference data: every schedule consumes the
// service's work units from the day it lands on.
type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	WorkshopID uint `json:"workshop_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	WorkUnits   int    `gorm:"not null" json:"work_units"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
