package models

import "time"

// Schedule is one unit of booked work. Capacity is per whole day, so only the
// date component of Date is meaningful (always truncated to midnight).
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkshopID uint     `gorm:"index" json:"workshop_id"`
	Workshop   Workshop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date  time.Time `gorm:"index" json:"date"`
	Notes string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
