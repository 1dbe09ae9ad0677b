package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"worklog-tracker/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestAlerts_CapAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	alerts := NewAlerts(db)
	ctx := context.Background()

	for i := 1; i <= MaxAlerts+5; i++ {
		if err := alerts.Append(ctx, fmt.Sprintf("alert-%d", i)); err != nil {
			t.Fatalf("append alert %d: %v", i, err)
		}
	}

	recent, err := alerts.Recent(ctx)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != MaxAlerts {
		t.Fatalf("expected %d alerts, got %d", MaxAlerts, len(recent))
	}
	if recent[0].Message != fmt.Sprintf("alert-%d", MaxAlerts+5) {
		t.Errorf("newest first: got %q", recent[0].Message)
	}
	if recent[len(recent)-1].Message != "alert-6" {
		t.Errorf("oldest retained: got %q, want alert-6", recent[len(recent)-1].Message)
	}

	// The trim must actually delete rows, not just hide them.
	var total int64
	if err := db.Model(&models.Alert{}).Count(&total).Error; err != nil {
		t.Fatal(err)
	}
	if total != MaxAlerts {
		t.Errorf("table holds %d rows, want %d", total, MaxAlerts)
	}
}

func TestUsers_DuplicateUsernameRejected(t *testing.T) {
	db := setupTestDB(t)
	users := NewUsers(db)
	ctx := context.Background()

	if err := users.Create(ctx, &models.User{Username: "alice", PasswordHash: "x", Role: models.RoleEmployee}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := users.Create(ctx, &models.User{Username: "alice", PasswordHash: "y", Role: models.RoleEmployee}); err == nil {
		t.Fatal("expected unique index violation for duplicate username")
	}

	all, err := users.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("roster changed on duplicate create: %d users", len(all))
	}
}

func TestUsers_ByUsernameNotFound(t *testing.T) {
	db := setupTestDB(t)
	users := NewUsers(db)

	_, err := users.ByUsername(context.Background(), "nobody")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLogs_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	logs := NewLogs(db)
	ctx := context.Background()

	for _, fn := range []string{"ACR", "Full Review", "Text Followup"} {
		if err := logs.Append(ctx, &models.WorkLog{TeamMember: "alice", Function: fn}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := logs.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(all))
	}
	if all[0].Function != "Text Followup" {
		t.Errorf("newest first: got %q", all[0].Function)
	}

	mine, err := logs.ByMember(ctx, "alice")
	if err != nil {
		t.Fatalf("by member: %v", err)
	}
	if len(mine) != 3 {
		t.Errorf("expected 3 logs for alice, got %d", len(mine))
	}
	if other, _ := logs.ByMember(ctx, "bob"); len(other) != 0 {
		t.Errorf("expected no logs for bob, got %d", len(other))
	}
}

func TestEnsureAdmin_SeedsOnce(t *testing.T) {
	db := setupTestDB(t)
	log := zap.NewNop()

	if err := EnsureAdmin(db, "root", "RootPass123", log); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := EnsureAdmin(db, "root2", "OtherPass123", log); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected exactly one admin, got %d", count)
	}
}
