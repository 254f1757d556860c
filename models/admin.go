package models

import "github.com/golang-jwt/jwt/v5"

type Admin struct {
	AdminID  uint   `json:"admin_id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"password,omitempty" gorm:"not null"`
}

type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
