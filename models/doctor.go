package models

import "github.com/golang-jwt/jwt/v5"

type Doctor struct {
	DoctorID  uint   `json:"doctor_id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null" validate:"required,min=3,max=100"`
	Specialty string `json:"specialty" gorm:"not null" validate:"required,min=3,max=50"`
	Email     string `json:"email" gorm:"unique;not null" validate:"required,email"`
	// Never serialized; write requests carry the password in their own
	// payload struct.
	Password  string `json:"-" gorm:"not null" validate:"required,min=6"`
	Phone     string `json:"phone" gorm:"not null" validate:"required"`

	// Weekly recurring availability windows, in configured order.
	AvailableTimes []TimeSlot `json:"available_times" gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

// TimeSlot is one configured availability window of a doctor,
// e.g. "09:00 - 10:00". The same windows recur every day.
type TimeSlot struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	DoctorID uint   `json:"-" gorm:"index;not null"`
	Position int    `json:"-" gorm:"not null"`
	Slot     string `json:"slot" gorm:"not null"`
}

type DoctorClaims struct {
	Id          uint   `json:"id"`
	DoctorEmail string `json:"email"`
	jwt.RegisteredClaims
}
