package models

import "github.com/lib/pq"

type Department struct {
	ID          int            `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Icon        string         `json:"icon"`
	Services    pq.StringArray `json:"services" gorm:"type:text[]"`
	Specialists int            `json:"specialists" gorm:"default:1"`
}
