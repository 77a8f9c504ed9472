package models

import "github.com/dgrijalva/jwt-go"

type Admin struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	FirstName   string `json:"firstName" gorm:"not null" validate:"required"`
	LastName    string `json:"lastName" gorm:"not null" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Email       string `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password    string `json:"password,omitempty" validate:"required,min=6"`
}

type AdminClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}
