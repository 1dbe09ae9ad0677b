package models

import "time"

// WorkLog is one submitted work entry. Rows are immutable after creation;
// retrieval is newest-first. Date is nil when the submitted value did not
// parse, such rows are kept but excluded from date-based aggregation.
type WorkLog struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	TeamMember string `gorm:"index;size:50;not null"`
	Function   string `gorm:"size:100"`
	Date       *time.Time

	FileNumber            string `gorm:"size:50"`
	Status                string `gorm:"size:50"`
	Tier1EscalationReason string `gorm:"size:255"`
	IMEscalationReason    string `gorm:"size:255"`
	Department            string `gorm:"size:100"`
	Comments              string `gorm:"type:text"`
}
