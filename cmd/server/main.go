package main

import (
	"fmt"
	"log"

	"worklog-tracker/internal/config"
	"worklog-tracker/internal/handlers"
	"worklog-tracker/internal/observability"
	"worklog-tracker/internal/server"
	"worklog-tracker/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := store.Open(cfg, logger)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	if err := store.EnsureAdmin(db, cfg.AdminUsername, cfg.AdminPassword, logger); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	h := handlers.New(store.NewUsers(db), store.NewLogs(db), store.NewAlerts(db), logger)
	r := server.NewRouter(cfg, logger, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Sugar().Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
