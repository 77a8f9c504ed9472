package models

import "github.com/lib/pq"

type HealthTest struct {
	ID                 int            `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"not null" validate:"required"`
	Price              float64        `json:"price" gorm:"not null" validate:"gte=0"`
	Department         string         `json:"department" gorm:"not null" validate:"required"`
	AvailableTimeSlots pq.StringArray `json:"availableTimeSlots" gorm:"type:text[]"`
}
