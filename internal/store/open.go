package store

import (
	"fmt"
	"time"

	"worklog-tracker/internal/config"
	"worklog-tracker/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and runs migrations. Postgres
// connects are retried because the DB container may still be coming up.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var db *gorm.DB
	var err error

	switch cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBDSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.DBDSN, err)
		}
	case "postgres":
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			db, err = gorm.Open(postgres.Open(cfg.DBDSN), gormCfg)
			if err == nil {
				break
			}
			log.Warn("failed to connect to DB, retrying",
				zap.Int("attempt", i), zap.Error(err))
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("connect to postgres after %d attempts: %w", maxAttempts, err)
		}
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WorkLog{},
		&models.Alert{},
	)
}

// EnsureAdmin seeds a bootstrap admin account when no admin row exists yet.
func EnsureAdmin(db *gorm.DB, username, password string, log *zap.Logger) error {
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "ChangeMe123!"
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Department:   "System",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("created bootstrap admin user", zap.String("username", username))
	return nil
}
