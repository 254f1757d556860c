package models

import "github.com/golang-jwt/jwt/v5"

type Patient struct {
	PatientID uint   `json:"patient_id" gorm:"primaryKey"`
	Name      string `json:"name" validate:"required,min=3,max=100"`
	Email     string `json:"email" gorm:"unique;not null" validate:"required,email"`
	Phone     string `json:"phone" gorm:"not null" validate:"required"`
	Address   string `json:"address"`
	Password  string `json:"password,omitempty" gorm:"not null" validate:"required,min=6"`
}

type VerifyOTP struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

type PatientClaims struct {
	PatientID    uint   `json:"patientID"`
	PatientEmail string `json:"email"`
	jwt.RegisteredClaims
}
