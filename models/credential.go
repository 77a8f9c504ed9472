package models

import "time"

// Credential is a doctor's login identity. Exactly one row per doctor,
// username globally unique, stored lowercase. The bcrypt hash never
// leaves the service layer.
type Credential struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	DoctorID  int       `json:"doctorId" gorm:"uniqueIndex;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
