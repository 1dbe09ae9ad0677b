package store

import (
	"context"

	"worklog-tracker/internal/models"
)

// The three persistence interfaces. One gorm-backed implementation exists for
// each; the backing driver (postgres or sqlite) is chosen at Open time.

type CredentialStore interface {
	Create(ctx context.Context, user *models.User) error
	ByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type LogStore interface {
	Append(ctx context.Context, entry *models.WorkLog) error
	All(ctx context.Context) ([]models.WorkLog, error)
	ByMember(ctx context.Context, member string) ([]models.WorkLog, error)
}

type AlertStore interface {
	Append(ctx context.Context, message string) error
	Recent(ctx context.Context) ([]models.Alert, error)
}
