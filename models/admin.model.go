package models

import (
	"gorm.io/gorm"
)

// Admin is a reviewer account for the dashboard
type Admin struct {
	gorm.Model
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"` // bcrypt hash
	Role     string `gorm:"default:'ADMIN'"`
}
