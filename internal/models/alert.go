package models

import "time"

// Alert is one entry of the rolling system feed shown on the admin dashboard.
type Alert struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Message   string `gorm:"size:255;not null"`
}

// Stamp renders the alert timestamp the way the dashboard displays it.
func (a Alert) Stamp() string {
	return a.CreatedAt.Format("2006-01-02 15:04:05")
}
