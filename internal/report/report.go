// Package report computes the derived views served to dashboards: per-function
// summaries, the per-date chart matrix and per-employee activity status. All
// functions are pure over rows already loaded from the stores and degrade to
// zero-valued shapes on empty input.
package report

import (
	"sort"
	"time"

	"worklog-tracker/internal/models"
)

// OtherBucket collects log entries whose function value is not in the catalog.
// It appears in summaries only when non-zero.
const OtherBucket = "Other"

// ActiveWindowDays is the activity cutoff for the employee roster.
const ActiveWindowDays = 7

const dateLayout = "2006-01-02"

// Summary tallies entries per catalog function. Every catalog key is present,
// zero-initialized. The returned key list is sorted for display order.
func Summary(logs []models.WorkLog) (map[string]int, []string) {
	counts := make(map[string]int, len(models.Catalog())+1)
	for _, fn := range models.Catalog() {
		counts[fn] = 0
	}

	other := 0
	for _, entry := range logs {
		switch {
		case entry.Function == "":
		case models.KnownFunction(entry.Function):
			counts[entry.Function]++
		default:
			other++
		}
	}
	if other > 0 {
		counts[OtherBucket] = other
	}

	functions := make([]string, 0, len(counts))
	for fn := range counts {
		functions = append(functions, fn)
	}
	sort.Strings(functions)

	return counts, functions
}

// ChartRow is one chart-data row: a Date string plus a count per chart column.
// The Total Hours column is always zero.
type ChartRow map[string]any

// ChartRows groups entries by date, one row per distinct date with every chart
// column zero-initialized. Entries without a parsed date are skipped. Rows are
// returned sorted by date ascending.
func ChartRows(logs []models.WorkLog) []ChartRow {
	columns := models.ChartColumns()
	byDate := make(map[string]ChartRow)

	for _, entry := range logs {
		if entry.Date == nil {
			continue
		}
		ds := entry.Date.Format(dateLayout)

		row, ok := byDate[ds]
		if !ok {
			row = make(ChartRow, len(columns)+1)
			for _, col := range columns {
				row[col] = 0
			}
			row["Date"] = ds
			byDate[ds] = row
		}

		if models.KnownFunction(entry.Function) {
			row[entry.Function] = row[entry.Function].(int) + 1
		}
	}

	dates := make([]string, 0, len(byDate))
	for ds := range byDate {
		dates = append(dates, ds)
	}
	sort.Strings(dates)

	rows := make([]ChartRow, 0, len(dates))
	for _, ds := range dates {
		rows = append(rows, byDate[ds])
	}
	return rows
}

// EmployeeStatus is one roster line for the admin employee view.
type EmployeeStatus struct {
	Username   string
	Department string
	Shift      string
	Location   string
	Status     string
	LastActive *time.Time
}

// ActivityStatuses classifies each user as Active when their most recent log
// date is at most ActiveWindowDays whole days before now (the boundary day is
// Active), else Inactive. Users without a dated log are Inactive with a nil
// LastActive.
func ActivityStatuses(users []models.User, logs []models.WorkLog, now time.Time) []EmployeeStatus {
	last := make(map[string]time.Time)
	for _, entry := range logs {
		if entry.Date == nil || entry.TeamMember == "" {
			continue
		}
		if prev, ok := last[entry.TeamMember]; !ok || entry.Date.After(prev) {
			last[entry.TeamMember] = *entry.Date
		}
	}

	today := truncateToDay(now)

	statuses := make([]EmployeeStatus, 0, len(users))
	for _, user := range users {
		st := EmployeeStatus{
			Username:   user.Username,
			Department: user.Department,
			Shift:      user.Shift,
			Location:   user.Location,
			Status:     "Inactive",
		}
		if ld, ok := last[user.Username]; ok {
			ldCopy := ld
			st.LastActive = &ldCopy
			days := int(today.Sub(truncateToDay(ld)).Hours() / 24)
			if days <= ActiveWindowDays {
				st.Status = "Active"
			}
		}
		statuses = append(statuses, st)
	}
	return statuses
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
