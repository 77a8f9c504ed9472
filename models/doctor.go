package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
)

// TimeSlot is a recurring weekly interval owned by a doctor. Display is
// stored as entered, not rebuilt from the start/end times.
type TimeSlot struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	DoctorID  int    `json:"-" gorm:"index"`
	Day       string `json:"day" gorm:"not null"`
	StartTime string `json:"startTime" gorm:"not null"`
	EndTime   string `json:"endTime" gorm:"not null"`
	Display   string `json:"display" gorm:"not null"`
}

type Doctor struct {
	ID              int            `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"not null" validate:"required"`
	Specialty       string         `json:"specialty" gorm:"not null" validate:"required"`
	Experience      string         `json:"experience" validate:"required"`
	Education       string         `json:"education" validate:"required"`
	Image           string         `json:"image"`
	AvailableDays   pq.StringArray `json:"availableDays" gorm:"type:text[]"`
	TimeSlots       []TimeSlot     `json:"timeSlots" gorm:"foreignKey:DoctorID;references:ID"`
	ShortBio        string         `json:"shortBio"`
	ConsultationFee string         `json:"consultationFee"`
}

type DoctorClaims struct {
	DoctorID int    `json:"doctor_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
