package store

import (
	"context"

	"worklog-tracker/internal/models"

	"gorm.io/gorm"
)

// MaxAlerts is the retention cap of the alert feed.
const MaxAlerts = 50

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users { return &Users{db: db} }

func (s *Users) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Users) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Order("username asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type Logs struct {
	db *gorm.DB
}

func NewLogs(db *gorm.DB) *Logs { return &Logs{db: db} }

func (s *Logs) Append(ctx context.Context, entry *models.WorkLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *Logs) All(ctx context.Context) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	if err := s.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *Logs) ByMember(ctx context.Context, member string) ([]models.WorkLog, error) {
	var logs []models.WorkLog
	if err := s.db.WithContext(ctx).
		Where("team_member = ?", member).
		Order("created_at desc, id desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

type Alerts struct {
	db *gorm.DB
}

func NewAlerts(db *gorm.DB) *Alerts { return &Alerts{db: db} }

// Append inserts an alert and evicts everything beyond the newest MaxAlerts.
// Insert and trim share one transaction so the feed is never left above the
// cap and a failed trim rolls the insert back.
func (s *Alerts) Append(ctx context.Context, message string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Alert{Message: message}).Error; err != nil {
			return err
		}
		keep := tx.Model(&models.Alert{}).
			Select("id").
			Order("created_at desc, id desc").
			Limit(MaxAlerts)
		return tx.Where("id NOT IN (?)", keep).Delete(&models.Alert{}).Error
	})
}

func (s *Alerts) Recent(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := s.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Limit(MaxAlerts).
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
