package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	Department   string   `gorm:"size:100"`
	Shift        string   `gorm:"size:50"`
	Location     string   `gorm:"size:100"`
}
